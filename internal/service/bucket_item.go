package service

import (
	"BucketShare/internal/model"
	"BucketShare/internal/repo"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// BucketItemService — работа с элементами списка. Каждая операция сначала
// спрашивает вердикт у Evaluate: элементами управляют и владелец, и коллабораторы.
type BucketItemService struct {
	items repo.BucketItemRepository
	lists *BucketListService
}

func NewBucketItemService(items repo.BucketItemRepository, lists *BucketListService) *BucketItemService {
	return &BucketItemService{items: items, lists: lists}
}

// BucketItemUpdate — частичное обновление элемента: nil-поля не трогаются.
type BucketItemUpdate struct {
	Content     *string
	IsCompleted *bool
}

// Create добавляет элемент в список.
func (s *BucketItemService) Create(ctx context.Context, listID, accountID int64, content string) (*model.BucketItem, error) {
	if _, _, err := s.lists.Evaluate(ctx, listID, accountID); err != nil {
		return nil, err
	}
	item := &model.BucketItem{
		BucketListID:   listID,
		Content:        content,
		LastModifiedBy: accountID,
		LastModifiedAt: time.Now().UTC(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List возвращает все элементы списка.
func (s *BucketItemService) List(ctx context.Context, listID, accountID int64) ([]model.BucketItem, error) {
	if _, _, err := s.lists.Evaluate(ctx, listID, accountID); err != nil {
		return nil, err
	}
	return s.items.ListByList(ctx, listID)
}

// Update применяет частичный патч. Метаданные последнего изменения
// обновляются при каждой мутации, даже если патч пустой.
func (s *BucketItemService) Update(ctx context.Context, listID, itemID, accountID int64, patch BucketItemUpdate) (*model.BucketItem, error) {
	if _, _, err := s.lists.Evaluate(ctx, listID, accountID); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"last_modified_by": accountID,
		"last_modified_at": time.Now().UTC(),
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.IsCompleted != nil {
		updates["is_completed"] = *patch.IsCompleted
	}

	if err := s.items.ApplyUpdates(ctx, listID, itemID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.items.GetByID(ctx, listID, itemID)
}

// Toggle инвертирует флаг выполнения элемента.
func (s *BucketItemService) Toggle(ctx context.Context, listID, itemID, accountID int64) (*model.BucketItem, error) {
	if _, _, err := s.lists.Evaluate(ctx, listID, accountID); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, listID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{
		"is_completed":     !item.IsCompleted,
		"last_modified_by": accountID,
		"last_modified_at": time.Now().UTC(),
	}
	if err := s.items.ApplyUpdates(ctx, listID, itemID, updates); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, listID, itemID)
}

// Delete удаляет элемент; родительский список не затрагивается.
func (s *BucketItemService) Delete(ctx context.Context, listID, itemID, accountID int64) error {
	if _, _, err := s.lists.Evaluate(ctx, listID, accountID); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, listID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
