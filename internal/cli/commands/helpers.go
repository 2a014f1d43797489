package commands

import (
	"BucketShare/internal/cli/auth"
	"BucketShare/internal/config"
	"strings"
)

// endpoint собирает URL эндпоинта из базового адреса сервера.
func endpoint(cfg *config.Config, path string) string {
	return strings.TrimRight(cfg.ServerURL, "/") + path
}

// bearer возвращает сохранённый токен; пустая строка — аноним.
func bearer(cfg *config.Config) string {
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return ""
	}
	return token
}

// listDTO — представление списка в ответах сервера.
type listDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	CreatedBy   int64   `json:"created_by"`
	IsPrivate   bool    `json:"is_private"`
	ShareToken  *string `json:"share_token,omitempty"`
}

// itemDTO — представление элемента в ответах сервера.
type itemDTO struct {
	ID          int64  `json:"id"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}
