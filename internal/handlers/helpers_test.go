package handlers_test

import (
	"BucketShare/internal/config"
	"BucketShare/internal/handlers"
	"BucketShare/internal/middleware"
	"BucketShare/internal/model"
	"BucketShare/internal/repo"
	"BucketShare/internal/service"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// newTestRouter поднимает полный стек поверх in-memory SQLite:
// хендлеры, сервисы и репозитории проверяются вместе, как их видит клиент.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file:" + t.Name() + "?mode=memory&cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.Account{}, &model.BucketList{}, &model.BucketItem{}, &model.Collaborator{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	accountSvc := service.NewAccountService(repo.NewAccountRepository(db))
	listSvc := service.NewBucketListService(repo.NewBucketListRepository(db), repo.NewCollaboratorRepository(db), logger)
	itemSvc := service.NewBucketItemService(repo.NewBucketItemRepository(db), listSvc)

	h := handlers.NewHandler(accountSvc, listSvc, itemSvc, logger, cfg)
	return h.Router
}

// doJSON выполняет запрос к роутеру; token="" — анонимный запрос.
func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// registerAndLogin создаёт аккаунт через API и возвращает (id, bearer-токен).
func registerAndLogin(t *testing.T, router http.Handler, username, email, password string) (int64, string) {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/accounts/register", "",
		`{"username":"`+username+`","email":"`+email+`","password":"`+password+`"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, rr.Code, rr.Body.String())
	}
	var acc struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&acc); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	rr = doJSON(t, router, http.MethodPost, "/api/accounts/login", "",
		`{"email_or_username":"`+username+`","password":"`+password+`"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", username, rr.Code)
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&tok); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if tok.AccessToken == "" {
		t.Fatalf("empty access_token for %s", username)
	}
	return acc.ID, tok.AccessToken
}

// bearerFor чеканит токен напрямую, минуя login — для точечных тестов
func bearerFor(t *testing.T, accountID int64) string {
	t.Helper()
	token, err := middleware.BuildToken(accountID, testSecret)
	if err != nil {
		t.Fatalf("BuildToken: %v", err)
	}
	return token
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

type listJSON struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CreatedBy   int64   `json:"created_by"`
	IsPrivate   bool    `json:"is_private"`
	ShareToken  *string `json:"share_token"`
}

type itemJSON struct {
	ID             int64  `json:"id"`
	BucketListID   int64  `json:"bucket_list_id"`
	Content        string `json:"content"`
	IsCompleted    bool   `json:"is_completed"`
	LastModifiedBy int64  `json:"last_modified_by"`
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) listJSON {
	t.Helper()
	var l listJSON
	if err := json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&l); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return l
}

func decodeItem(t *testing.T, rr *httptest.ResponseRecorder) itemJSON {
	t.Helper()
	var it itemJSON
	if err := json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&it); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	return it
}
