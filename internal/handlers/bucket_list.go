package handlers

import (
	"BucketShare/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BucketListHandler обрабатывает CRUD списков и протокол шаринга.
type BucketListHandler struct {
	ListService *service.BucketListService
	Logger      *zap.SugaredLogger
}

func NewBucketListHandler(listService *service.BucketListService, logger *zap.SugaredLogger) *BucketListHandler {
	return &BucketListHandler{ListService: listService, Logger: logger}
}

type BucketListCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type BucketListUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
}

// Create создание списка
func (h *BucketListHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req BucketListCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateList: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Create(r.Context(), id, req.Title, req.Description)
	if err != nil {
		h.Logger.Errorw("CreateList: service error", "account_id", id, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// ListOwned возвращает только собственные списки аккаунта
func (h *BucketListHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	skip, limit := pagination(r)

	lists, err := h.ListService.ListOwned(r.Context(), id, skip, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// ListCollaborated возвращает списки, куда аккаунт допущен по токену
func (h *BucketListHandler) ListCollaborated(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	skip, limit := pagination(r)

	lists, err := h.ListService.ListCollaborated(r.Context(), id, skip, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// Get чтение списка владельцем или коллаборатором
func (h *BucketListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Get(r.Context(), listID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Update частичное обновление; флаг приватности — только владелец
func (h *BucketListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	var req BucketListUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateList: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Update(r.Context(), listID, id, service.BucketListUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Delete удаление списка владельцем (каскадно)
func (h *BucketListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	if err := h.ListService.Delete(r.Context(), listID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Share выпуск share-токена (идемпотентно)
func (h *BucketListHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Share(r.Context(), listID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Unshare сброс токена; уже допущенные коллабораторы остаются
func (h *BucketListHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Unshare(r.Context(), listID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Redeem погашение share-токена: допускает аккаунт к списку
func (h *BucketListHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	token := chi.URLParam(r, "token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	list, err := h.ListService.Redeem(r.Context(), token, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Collaborators список допусков
func (h *BucketListHandler) Collaborators(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	collaborators, err := h.ListService.ListCollaborators(r.Context(), listID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collaborators)
}
