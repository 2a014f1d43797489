package model

import "time"

// Account — учётная запись пользователя сервиса.
type Account struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"date_created"`
}
