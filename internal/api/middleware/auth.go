package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userEmailKey contextKey = "userEmail"
)

// Identity извлекает пользователя из заголовков X-User-ID и X-User-Email
// Витрина публичная: заголовков может не быть, запрос проходит дальше в любом
// случае, а залогиненный пользователь привязывается к создаваемым заявкам
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if header := r.Header.Get("X-User-ID"); header != "" {
			if userID, err := strconv.ParseInt(header, 10, 64); err == nil {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
		}
		if email := r.Header.Get("X-User-Email"); email != "" {
			ctx = context.WithValue(ctx, userEmailKey, email)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserEmail возвращает email пользователя из контекста
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}
