package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "console",
		Name:      "rate_limit_exceeded_total",
		Help:      "Requests rejected by the console rate limiter",
	},
	[]string{"method", "route"},
)
