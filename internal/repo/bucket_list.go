package repo

import (
	"BucketShare/internal/model"
	"context"

	"gorm.io/gorm"
)

// BucketListRepository определяет контракт доступа к BucketList.
type BucketListRepository interface {
	Create(ctx context.Context, list *model.BucketList) error

	// GetByID возвращает список по id без проверки доступа.
	GetByID(ctx context.Context, id int64) (*model.BucketList, error)

	// GetByIDAndOwner возвращает список только если ownerID — его создатель.
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.BucketList, error)

	// GetByShareToken ищет расшаренный список по токену (is_private = false).
	GetByShareToken(ctx context.Context, token string) (*model.BucketList, error)

	// ListByOwner возвращает все списки, созданные аккаунтом.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.BucketList, error)

	// ListCollaborated возвращает списки, к которым аккаунт допущен как коллаборатор.
	ListCollaborated(ctx context.Context, accountID int64) ([]model.BucketList, error)

	// Update сохраняет изменённые поля списка.
	Update(ctx context.Context, list *model.BucketList) error

	// AssignShareToken выставляет токен и is_private=false условным UPDATE
	// (только если токена ещё нет). Возвращает true, если токен записан
	// этим вызовом; false — токен уже был у списка.
	AssignShareToken(ctx context.Context, listID int64, token string) (bool, error)

	// ClearShareToken атомарно сбрасывает токен и возвращает список в private.
	ClearShareToken(ctx context.Context, listID int64) error

	// Delete удаляет список вместе с элементами и коллабораторами в одной транзакции.
	Delete(ctx context.Context, listID int64) error
}

type bucketListRepo struct {
	db *gorm.DB
}

// NewBucketListRepository создаёт реализацию репозитория для BucketList.
func NewBucketListRepository(db *gorm.DB) BucketListRepository {
	return &bucketListRepo{db: db}
}

func (r *bucketListRepo) Create(ctx context.Context, list *model.BucketList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *bucketListRepo) GetByID(ctx context.Context, id int64) (*model.BucketList, error) {
	var list model.BucketList
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *bucketListRepo) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.BucketList, error) {
	var list model.BucketList
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", id, ownerID).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *bucketListRepo) GetByShareToken(ctx context.Context, token string) (*model.BucketList, error) {
	var list model.BucketList
	err := r.db.WithContext(ctx).
		Where("share_token = ? AND is_private = ?", token, false).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *bucketListRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.BucketList, error) {
	var lists []model.BucketList
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("id ASC").
		Find(&lists).Error
	return lists, err
}

func (r *bucketListRepo) ListCollaborated(ctx context.Context, accountID int64) ([]model.BucketList, error) {
	var lists []model.BucketList
	err := r.db.WithContext(ctx).
		Joins("JOIN collaborators ON collaborators.bucket_list_id = bucket_lists.id").
		Where("collaborators.account_id = ?", accountID).
		Order("bucket_lists.id ASC").
		Find(&lists).Error
	return lists, err
}

func (r *bucketListRepo) Update(ctx context.Context, list *model.BucketList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *bucketListRepo) AssignShareToken(ctx context.Context, listID int64, token string) (bool, error) {
	// Условный UPDATE: двое конкурентных share() не выпустят два разных токена —
	// проигравший увидит RowsAffected=0 и перечитает уже записанный токен.
	tx := r.db.WithContext(ctx).Model(&model.BucketList{}).
		Where("id = ? AND share_token IS NULL", listID).
		Updates(map[string]any{"share_token": token, "is_private": false})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *bucketListRepo) ClearShareToken(ctx context.Context, listID int64) error {
	return r.db.WithContext(ctx).Model(&model.BucketList{}).
		Where("id = ?", listID).
		Updates(map[string]any{"share_token": nil, "is_private": true}).Error
}

func (r *bucketListRepo) Delete(ctx context.Context, listID int64) error {
	// Каскад оформлен явной транзакцией: элементы, допуски, затем сам список.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bucket_list_id = ?", listID).Delete(&model.BucketItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bucket_list_id = ?", listID).Delete(&model.Collaborator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.BucketList{}, listID).Error
	})
}
