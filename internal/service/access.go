package service

import (
	"BucketShare/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Role — отношение аккаунта к списку.
type Role int

const (
	// RoleOwner — создатель списка, полный контроль.
	RoleOwner Role = iota
	// RoleCollaborator — допущен по share-токену: чтение и работа с элементами.
	RoleCollaborator
)

// Evaluate определяет роль аккаунта относительно списка.
// Порядок: сначала владение (id+created_by), затем запись допуска.
// Ни то ни другое — ErrNotFound, без различения "нет списка" и "нет доступа".
func (s *BucketListService) Evaluate(ctx context.Context, listID, accountID int64) (*model.BucketList, Role, error) {
	list, err := s.lists.GetByIDAndOwner(ctx, listID, accountID)
	if err == nil {
		return list, RoleOwner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	if _, err := s.collaborators.GetByListAndAccount(ctx, listID, accountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	list, err = s.lists.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// допуск есть, а списка нет — останки гонки с удалением
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	return list, RoleCollaborator, nil
}
