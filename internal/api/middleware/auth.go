package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/meuagendamento/scheduling-service/internal/api/handlers"
)

// HeaderProfessionalID заголовок аутентификации админ-панели.
// Значение подставляется API-шлюзом после проверки сессии.
const HeaderProfessionalID = "X-Professional-ID"

const msgMissingProfessionalID = "отсутствует или некорректен заголовок X-Professional-ID"

type contextKey string

const professionalIDKey contextKey = "professionalID"

// Auth middleware извлекает ID профессионала из заголовка и кладет в контекст.
// Запросы без валидного заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(HeaderProfessionalID)
		if idStr == "" {
			handlers.RespondUnauthorized(w, msgMissingProfessionalID)
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, msgMissingProfessionalID)
			return
		}

		ctx := context.WithValue(r.Context(), professionalIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetProfessionalID возвращает ID профессионала из контекста запроса
func GetProfessionalID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(professionalIDKey).(int64)
	return id, ok
}
