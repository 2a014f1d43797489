package repo

import (
	"BucketShare/internal/model"
	"context"

	"gorm.io/gorm"
)

// BucketItemRepository — контракт доступа к элементам списка.
type BucketItemRepository interface {
	Create(ctx context.Context, item *model.BucketItem) error

	// GetByID ищет элемент по id в пределах конкретного списка.
	GetByID(ctx context.Context, listID, itemID int64) (*model.BucketItem, error)

	// ListByList возвращает все элементы списка.
	ListByList(ctx context.Context, listID int64) ([]model.BucketItem, error)

	// ApplyUpdates применяет частичное обновление полей элемента.
	ApplyUpdates(ctx context.Context, listID, itemID int64, updates map[string]any) error

	Delete(ctx context.Context, listID, itemID int64) error
}

type bucketItemRepo struct {
	db *gorm.DB
}

// NewBucketItemRepository создаёт реализацию репозитория для BucketItem.
func NewBucketItemRepository(db *gorm.DB) BucketItemRepository {
	return &bucketItemRepo{db: db}
}

func (r *bucketItemRepo) Create(ctx context.Context, item *model.BucketItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *bucketItemRepo) GetByID(ctx context.Context, listID, itemID int64) (*model.BucketItem, error) {
	var item model.BucketItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND bucket_list_id = ?", itemID, listID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *bucketItemRepo) ListByList(ctx context.Context, listID int64) ([]model.BucketItem, error) {
	var items []model.BucketItem
	err := r.db.WithContext(ctx).
		Where("bucket_list_id = ?", listID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *bucketItemRepo) ApplyUpdates(ctx context.Context, listID, itemID int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.BucketItem{}).
		Where("id = ? AND bucket_list_id = ?", itemID, listID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bucketItemRepo) Delete(ctx context.Context, listID, itemID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND bucket_list_id = ?", itemID, listID).
		Delete(&model.BucketItem{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
