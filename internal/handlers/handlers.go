package handlers

import (
	"BucketShare/internal/config"
	"BucketShare/internal/middleware"
	"BucketShare/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	accountService *service.AccountService,
	listService *service.BucketListService,
	itemService *service.BucketItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	accountHandler := NewAccountHandler(accountService, logger, config)
	listHandler := NewBucketListHandler(listService, logger)
	itemHandler := NewBucketItemHandler(itemService, logger)

	// Account routes
	r.Post("/api/accounts/register", accountHandler.Register)
	r.Post("/api/accounts/login", accountHandler.Login)
	r.Get("/api/accounts/me", accountHandler.Me)
	r.Put("/api/accounts/me", accountHandler.UpdateMe)

	// Bucket list routes
	r.Route("/api/bucket-lists", func(r chi.Router) {
		r.Post("/", listHandler.Create)
		r.Get("/", listHandler.ListOwned)
		r.Get("/collaborated", listHandler.ListCollaborated)
		r.Get("/shared/{token}", listHandler.Redeem)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", listHandler.Get)
			r.Put("/", listHandler.Update)
			r.Delete("/", listHandler.Delete)
			r.Post("/share", listHandler.Share)
			r.Post("/unshare", listHandler.Unshare)
			r.Get("/collaborators", listHandler.Collaborators)

			r.Route("/items", func(r chi.Router) {
				r.Post("/", itemHandler.Create)
				r.Get("/", itemHandler.List)
				r.Put("/{itemID}", itemHandler.Update)
				r.Put("/{itemID}/toggle", itemHandler.Toggle)
				r.Delete("/{itemID}", itemHandler.Delete)
			})
		})
	})

	return &Handler{Router: r}
}
