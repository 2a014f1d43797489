package model

import "time"

// Collaborator — допуск не-владельца к списку, создаётся при погашении
// share-токена. Не более одной записи на пару (список, аккаунт) —
// уникальный составной индекс является целью upsert-а при redeem.
type Collaborator struct {
	ID           int64 `gorm:"primaryKey" json:"id"`
	BucketListID int64 `gorm:"not null;uniqueIndex:idx_collab_list_account" json:"bucket_list_id"`
	AccountID    int64 `gorm:"not null;uniqueIndex:idx_collab_list_account" json:"collaborator_id"`
	IsOwner      bool  `gorm:"not null;default:false" json:"is_owner"`

	AccessedAt time.Time `json:"access_date"`
}
