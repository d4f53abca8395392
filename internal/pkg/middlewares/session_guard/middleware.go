package session_guard

import (
	"net/http"

	"console/pkg/logger"
)

// Middleware rejects requests while no staff session is active (401) or when
// the session's role cannot access area (403).
func Middleware(log handlerLogger, sess Session, area string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := sess.User()
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Inicia sesión para continuar"}`))
				return
			}

			if !sess.CanAccess(area) {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("user_id", user.ID),
					logger.NewField("role", user.Role.String()),
					logger.NewField("area", area),
				).Warn("access denied")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Forbidden","message":"Acceso restringido"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
