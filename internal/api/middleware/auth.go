package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// HeaderCustomerID заголовок, в котором API-шлюз передает ID клиента
const HeaderCustomerID = "X-User-ID"

// Auth извлекает ID клиента из заголовка и кладет его в контекст запроса
// Аутентификацию выполняет шлюз, сервис доверяет заголовку
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderCustomerID)
		if raw == "" {
			http.Error(w, `{"error": "отсутствует заголовок X-User-ID"}`, http.StatusUnauthorized)
			return
		}

		customerID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, `{"error": "некорректный ID пользователя"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), customerIDKey, customerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerID возвращает ID клиента из контекста запроса
func GetCustomerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(customerIDKey).(uuid.UUID)
	return id, ok
}
