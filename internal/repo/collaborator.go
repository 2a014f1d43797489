package repo

import (
	"BucketShare/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollaboratorRepository — контракт доступа к записям допуска.
type CollaboratorRepository interface {
	// Upsert атомарно создаёт допуск (is_owner=false) или обновляет
	// accessed_at существующего. Одна запись на пару (список, аккаунт).
	Upsert(ctx context.Context, listID, accountID int64, accessedAt time.Time) error

	// GetByListAndAccount возвращает запись допуска или gorm.ErrRecordNotFound.
	GetByListAndAccount(ctx context.Context, listID, accountID int64) (*model.Collaborator, error)

	// ListByList возвращает все допуски списка.
	ListByList(ctx context.Context, listID int64) ([]model.Collaborator, error)
}

type collaboratorRepo struct {
	db *gorm.DB
}

// NewCollaboratorRepository создаёт реализацию репозитория для Collaborator.
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepo{db: db}
}

// Upsert выполняется одним INSERT ... ON CONFLICT DO UPDATE: конкурентные
// погашения одного токена одним аккаунтом не создают дублей.
func (r *collaboratorRepo) Upsert(ctx context.Context, listID, accountID int64, accessedAt time.Time) error {
	c := &model.Collaborator{
		BucketListID: listID,
		AccountID:    accountID,
		IsOwner:      false,
		AccessedAt:   accessedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bucket_list_id"}, {Name: "account_id"}},
		DoUpdates: clause.Assignments(map[string]any{"accessed_at": accessedAt}),
	}).Create(c).Error
}

func (r *collaboratorRepo) GetByListAndAccount(ctx context.Context, listID, accountID int64) (*model.Collaborator, error) {
	var c model.Collaborator
	err := r.db.WithContext(ctx).
		Where("bucket_list_id = ? AND account_id = ?", listID, accountID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collaboratorRepo) ListByList(ctx context.Context, listID int64) ([]model.Collaborator, error) {
	var collaborators []model.Collaborator
	err := r.db.WithContext(ctx).
		Where("bucket_list_id = ?", listID).
		Order("id ASC").
		Find(&collaborators).Error
	return collaborators, err
}
