package reporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GPSPushTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gps_push_total",
		Help: "Automatic GPS pushes to the backend by outcome",
	},
	[]string{"outcome"},
)
