package handlers

import (
	"BucketShare/internal/config"
	"BucketShare/internal/middleware"
	"BucketShare/internal/model"
	"BucketShare/internal/service"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AccountHandler обрабатывает регистрацию, вход и профиль.
type AccountHandler struct {
	AccountService *service.AccountService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewAccountHandler(accountService *service.AccountService, logger *zap.SugaredLogger, cfg *config.Config) *AccountHandler {
	return &AccountHandler{AccountService: accountService, Logger: logger, Config: cfg}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
}

// TokenResponse — bearer-токен для Authorization.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccountResponse — публичное представление аккаунта (без хэша пароля).
type AccountResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DateCreated time.Time `json:"date_created"`
}

func toAccountResponse(a *model.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Username: a.Username, Email: a.Email, DateCreated: a.CreatedAt}
}

// Register регистрация нового аккаунта
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	account, err := h.AccountService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.Logger.Warnw("Register: failed", "username", req.Username, "error", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

// Login вход по username или email; в ответе bearer-токен.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	account, err := h.AccountService.Login(r.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.BuildToken(account.ID, h.Config.AuthSecret)
	if err != nil {
		h.Logger.Errorw("Login: failed to build token", "account_id", account.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me профиль текущего аккаунта
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.AccountService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

type AccountUpdateRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateMe частичное обновление профиля
func (h *AccountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req AccountUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateMe: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	account, err := h.AccountService.Update(r.Context(), id, service.AccountUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}
