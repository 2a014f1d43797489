package handlers

import (
	"BucketShare/internal/service"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// BucketItemHandler обрабатывает элементы списка.
type BucketItemHandler struct {
	ItemService *service.BucketItemService
	Logger      *zap.SugaredLogger
}

func NewBucketItemHandler(itemService *service.BucketItemService, logger *zap.SugaredLogger) *BucketItemHandler {
	return &BucketItemHandler{ItemService: itemService, Logger: logger}
}

type BucketItemCreateRequest struct {
	Content string `json:"content"`
}

type BucketItemUpdateRequest struct {
	Content     *string `json:"content,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

// Create добавление элемента
func (h *BucketItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	var req BucketItemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateItem: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Create(r.Context(), listID, id, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// List все элементы списка
func (h *BucketItemHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}

	items, err := h.ItemService.List(r.Context(), listID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Update частичный патч элемента
func (h *BucketItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	var req BucketItemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateItem: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Update(r.Context(), listID, itemID, id, service.BucketItemUpdate{
		Content:     req.Content,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Toggle инверсия флага выполнения
func (h *BucketItemHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	item, err := h.ItemService.Toggle(r.Context(), listID, itemID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete удаление элемента; список не затрагивается
func (h *BucketItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	listID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid list id", http.StatusBadRequest)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	if err := h.ItemService.Delete(r.Context(), listID, itemID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
