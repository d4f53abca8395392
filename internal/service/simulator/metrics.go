package simulator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var SimulationRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Finished route simulations by outcome",
	},
	[]string{"outcome"},
)
