package main

import (
	"BucketShare/internal/config"
	"BucketShare/internal/handlers"
	"BucketShare/internal/middleware"
	"BucketShare/internal/repo"
	"BucketShare/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	accountRepo := repo.NewAccountRepository(gormDB)
	listRepo := repo.NewBucketListRepository(gormDB)
	itemRepo := repo.NewBucketItemRepository(gormDB)
	collabRepo := repo.NewCollaboratorRepository(gormDB)

	accountService := service.NewAccountService(accountRepo)
	listService := service.NewBucketListService(listRepo, collabRepo, sugar)
	itemService := service.NewBucketItemService(itemRepo, listService)

	h := handlers.NewHandler(accountService, listService, itemService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
