package repo

import (
	"BucketShare/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к PostgreSQL и прогоняет automigrate
// для всех моделей сервиса.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&model.Account{},
		&model.BucketList{},
		&model.BucketItem{},
		&model.Collaborator{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
