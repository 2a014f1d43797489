package service

import (
	"BucketShare/internal/model"
	"BucketShare/internal/repo"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestServices поднимает сервисы поверх реальных репозиториев и
// in-memory SQLite: доступ, шаринг и каскады проверяются сквозь весь стек.
func newTestServices(t *testing.T) (*AccountService, *BucketListService, *BucketItemService) {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.Account{}, &model.BucketList{}, &model.BucketItem{}, &model.Collaborator{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	logger := zap.NewNop().Sugar()
	accounts := NewAccountService(repo.NewAccountRepository(db))
	lists := NewBucketListService(repo.NewBucketListRepository(db), repo.NewCollaboratorRepository(db), logger)
	items := NewBucketItemService(repo.NewBucketItemRepository(db), lists)
	return accounts, lists, items
}
