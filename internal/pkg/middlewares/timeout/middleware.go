package timeout

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Middleware ограничивает время обработки запроса.
// Websocket-апгрейды пропускаются: их контекст живёт столько же, сколько соединение.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 || websocket.IsWebSocketUpgrade(r) {
				next.ServeHTTP(w, r)
				return
			}

			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
