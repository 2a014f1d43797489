package service

import (
	"BucketShare/internal/model"
	"BucketShare/internal/repo"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BucketListService — жизненный цикл списков: CRUD, вычисление ролей
// и протокол шаринга (access.go, share.go).
type BucketListService struct {
	lists         repo.BucketListRepository
	collaborators repo.CollaboratorRepository
	logger        *zap.SugaredLogger
}

func NewBucketListService(
	lists repo.BucketListRepository,
	collaborators repo.CollaboratorRepository,
	logger *zap.SugaredLogger,
) *BucketListService {
	return &BucketListService{lists: lists, collaborators: collaborators, logger: logger}
}

// BucketListUpdate — частичное обновление списка: nil-поля не трогаются.
type BucketListUpdate struct {
	Title       *string
	Description *string
	IsPrivate   *bool
}

// Create заводит новый приватный список. Уникальность заголовков не
// требуется: у одного владельца может быть сколько угодно списков "Trip".
func (s *BucketListService) Create(ctx context.Context, ownerID int64, title, description string) (*model.BucketList, error) {
	list := &model.BucketList{
		Title:       title,
		Description: description,
		CreatedBy:   ownerID,
		IsPrivate:   true,
	}
	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListOwned возвращает только собственные списки аккаунта.
// skip/limit применяются в памяти после полной выборки — потолок
// масштабирования, но именно такая семантика зафиксирована.
func (s *BucketListService) ListOwned(ctx context.Context, ownerID int64, skip, limit int) ([]model.BucketList, error) {
	lists, err := s.lists.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return paginate(lists, skip, limit), nil
}

// ListCollaborated возвращает только списки, где аккаунт — коллаборатор.
// С собственными списками на сервере никогда не смешивается.
func (s *BucketListService) ListCollaborated(ctx context.Context, accountID int64, skip, limit int) ([]model.BucketList, error) {
	lists, err := s.lists.ListCollaborated(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return paginate(lists, skip, limit), nil
}

// Get возвращает список, если аккаунт — владелец или коллаборатор.
func (s *BucketListService) Get(ctx context.Context, listID, accountID int64) (*model.BucketList, error) {
	list, _, err := s.Evaluate(ctx, listID, accountID)
	return list, err
}

// Update применяет частичное обновление. Флаг приватности меняет только
// владелец; перевод в private сбрасывает и share-токен, чтобы токен не
// пережил приватность.
func (s *BucketListService) Update(ctx context.Context, listID, accountID int64, patch BucketListUpdate) (*model.BucketList, error) {
	list, role, err := s.Evaluate(ctx, listID, accountID)
	if err != nil {
		return nil, err
	}

	if patch.IsPrivate != nil && role != RoleOwner {
		return nil, ErrForbidden
	}

	if patch.Title != nil {
		list.Title = *patch.Title
	}
	if patch.Description != nil {
		list.Description = *patch.Description
	}
	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}

	if patch.IsPrivate != nil && *patch.IsPrivate != list.IsPrivate {
		if *patch.IsPrivate {
			if err := s.lists.ClearShareToken(ctx, listID); err != nil {
				return nil, err
			}
		} else {
			list.IsPrivate = false
			if err := s.lists.Update(ctx, list); err != nil {
				return nil, err
			}
		}
		return s.lists.GetByID(ctx, listID)
	}
	return list, nil
}

// Delete удаляет список каскадно. Разрешено только владельцу; коллаборатор
// получает Forbidden — его роль уже установлена, существование не скрываем.
func (s *BucketListService) Delete(ctx context.Context, listID, accountID int64) error {
	_, role, err := s.Evaluate(ctx, listID, accountID)
	if err != nil {
		return err
	}
	if role != RoleOwner {
		return ErrForbidden
	}
	return s.lists.Delete(ctx, listID)
}

// ListCollaborators возвращает допуски списка; доступно владельцу и коллабораторам.
func (s *BucketListService) ListCollaborators(ctx context.Context, listID, accountID int64) ([]model.Collaborator, error) {
	if _, _, err := s.Evaluate(ctx, listID, accountID); err != nil {
		return nil, err
	}
	collaborators, err := s.collaborators.ListByList(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.Collaborator{}, nil
		}
		return nil, err
	}
	return collaborators, nil
}

// paginate срезает skip, затем limit. limit<=0 трактуется как "без ограничения".
func paginate(lists []model.BucketList, skip, limit int) []model.BucketList {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(lists) {
		return []model.BucketList{}
	}
	lists = lists[skip:]
	if limit > 0 && limit < len(lists) {
		lists = lists[:limit]
	}
	return lists
}
