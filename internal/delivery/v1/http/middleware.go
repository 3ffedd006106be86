package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/thriftysouq/go-backend/pkg/e"
	"github.com/thriftysouq/go-backend/pkg/logger"
)

// AdminAuth пропускает запрос только со статическим bearer-токеном
// администратора. Пустой настроенный токен закрывает админку целиком.
func AdminAuth(token string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				log.Warnf("admin request rejected: ADMIN_API_TOKEN is not configured")
				WriteError(w, e.ErrUnauthorized)
				return
			}

			header := r.Header.Get("Authorization")
			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Warnf("admin request rejected: bad token for %s %s", r.Method, r.URL.Path)
				WriteError(w, e.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
