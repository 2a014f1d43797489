package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// BuildToken выпускает HS256 JWT с subject = id аккаунта.
// Срок действия не ставится — унаследованное поведение исходного дизайна.
func BuildToken(accountID int64, secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject: strconv.FormatInt(accountID, 10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken проверяет подпись и возвращает id аккаунта из subject.
func parseToken(tokenString, secret string) (int64, bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// WithAuth разбирает заголовок Authorization: Bearer <jwt> и кладёт id
// аккаунта в контекст запроса. Запрос без валидного токена проходит
// дальше анонимным — 401 отдают хендлеры, которым нужна аутентификация.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if id, ok := parseToken(strings.TrimSpace(parts[1]), secret); ok {
					r = r.WithContext(context.WithValue(r.Context(), accountIDKey, id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetAccountIDFromContext возвращает id аккаунта, установленный WithAuth.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok
}
