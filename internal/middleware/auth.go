package middleware

import (
	"context"
	"net/http"
)

// TokenHeader — заголовок, в котором клиент передаёт токен сессии.
const TokenHeader = "X-Token"

type contextKey string

const userIDKey contextKey = "user_id"

// TokenResolver переводит токен в userID (реализуется AuthService).
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// WithAuth резолвит X-Token через кеш сессий и кладёт userID в контекст.
// Запрос без валидного токена проходит дальше анонимным — решение об
// отказе принимает хендлер (часть ручек допускает анонимный доступ).
func WithAuth(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token != "" {
				if userID, err := resolver.Resolve(r.Context(), token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext возвращает userID, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
