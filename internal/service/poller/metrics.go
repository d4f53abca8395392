package poller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PollerFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poller_fetch_total",
			Help: "Live data fetches by list and outcome",
		},
		[]string{"list", "outcome"},
	)

	PollerListSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "poller_list_size",
			Help: "Number of items in the last successfully fetched list",
		},
		[]string{"list"},
	)
)
