package rate_limiter

import (
	"net/http"
	"strconv"

	"console/pkg/logger"

	"github.com/gorilla/mux"
)

// Middleware отклоняет запросы сверх ёмкости limiter с 429.
func Middleware(log handlerLogger, capacity int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := routeTemplate(r)
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Demasiadas solicitudes, intenta de nuevo"}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("route", route),
				).Error("failed to write rate limit response")
			}
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if template, err := route.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
