package model

import "time"

// BucketList — список желаний. Принадлежит создателю (CreatedBy),
// остальные получают доступ только через Collaborator.
type BucketList struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   int64  `gorm:"not null;index" json:"created_by"`

	// Share выставляет ShareToken и снимает IsPrivate одним UPDATE;
	// unshare и возврат в private сбрасывают оба поля атомарно.
	IsPrivate  bool    `gorm:"not null;default:true" json:"is_private"`
	ShareToken *string `gorm:"size:64;uniqueIndex" json:"share_token,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"date_created"`
}

// BucketItem — элемент списка. Жизненный цикл привязан к родительскому
// списку: удаление списка каскадно удаляет элементы.
type BucketItem struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	BucketListID int64  `gorm:"not null;index" json:"bucket_list_id"`
	Content      string `gorm:"type:text;not null" json:"content"`
	IsCompleted  bool   `gorm:"not null;default:false" json:"is_completed"`

	LastModifiedBy int64     `json:"last_modified_by"`
	LastModifiedAt time.Time `json:"date_last_modified"`
}
