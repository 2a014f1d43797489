package service

import (
	"BucketShare/internal/model"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mintShareToken выпускает непрозрачный уникальный токен (hex UUID).
func mintShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Share переводит список в состояние Shared. Идемпотентен: если токен уже
// выпущен, возвращается он же — новый не чеканится. Чеканка выполняется
// условным UPDATE, поэтому двое конкурентных вызовов получат один токен.
func (s *BucketListService) Share(ctx context.Context, listID, accountID int64) (*model.BucketList, error) {
	list, role, err := s.Evaluate(ctx, listID, accountID)
	if err != nil {
		return nil, err
	}
	if role != RoleOwner {
		return nil, ErrForbidden
	}

	if list.ShareToken != nil {
		return list, nil
	}

	assigned, err := s.lists.AssignShareToken(ctx, listID, mintShareToken())
	if err != nil {
		return nil, err
	}
	if !assigned {
		s.logger.Infow("share: token already minted concurrently", "list_id", listID)
	}
	return s.lists.GetByID(ctx, listID)
}

// Unshare сбрасывает токен и возвращает список в private. Старый токен
// перестаёт гаситься немедленно, но уже допущенные коллабораторы доступ
// сохраняют — unshare останавливает новые допуски, а не отзывает старые.
func (s *BucketListService) Unshare(ctx context.Context, listID, accountID int64) (*model.BucketList, error) {
	_, role, err := s.Evaluate(ctx, listID, accountID)
	if err != nil {
		return nil, err
	}
	if role != RoleOwner {
		return nil, ErrForbidden
	}

	if err := s.lists.ClearShareToken(ctx, listID); err != nil {
		return nil, err
	}
	return s.lists.GetByID(ctx, listID)
}

// Redeem гасит share-токен: находит расшаренный список и атомарно
// создаёт/обновляет запись допуска. Повторное погашение тем же аккаунтом
// лишь освежает accessed_at. Сбой записи допуска не валит запрос —
// список всё равно возвращается, сбой уходит в лог.
func (s *BucketListService) Redeem(ctx context.Context, token string, accountID int64) (*model.BucketList, error) {
	list, err := s.lists.GetByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Владелец не оформляется коллаборатором собственного списка.
	if list.CreatedBy == accountID {
		return list, nil
	}

	if err := s.collaborators.Upsert(ctx, list.ID, accountID, time.Now().UTC()); err != nil {
		s.logger.Errorw("redeem: failed to record collaborator",
			"list_id", list.ID,
			"account_id", accountID,
			"error", err,
		)
	}
	return list, nil
}
