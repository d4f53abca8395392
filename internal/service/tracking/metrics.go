package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TrackFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tracking_fetch_total",
		Help: "Track fetches of the tracked delivery by outcome",
	},
	[]string{"outcome"},
)
