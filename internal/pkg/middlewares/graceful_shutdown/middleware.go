package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отвечает 503 на новые запросы, когда ongoingCtx отменён во время остановки.
// Connection: close просит браузер не переиспользовать соединение.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"Service Unavailable","message":"La consola se está deteniendo"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
