package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	WebsocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "console_websocket_clients",
			Help: "Connected map websocket clients",
		},
	)
)

type ClientCounter interface {
	ClientCount() int
}

// SystemCollector samples host and process usage. It runs as a background task.
type SystemCollector struct {
	interval time.Duration
	clients  ClientCounter
}

// NewSystemCollector: clients may be nil.
func NewSystemCollector(interval time.Duration, clients ClientCounter) *SystemCollector {
	return &SystemCollector{
		interval: interval,
		clients:  clients,
	}
}

func (c *SystemCollector) TTL() time.Duration {
	return c.interval
}

func (c *SystemCollector) Do(ctx context.Context) error {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if c.clients != nil {
		WebsocketClients.Set(float64(c.clients.ClientCount()))
	}

	return nil
}

func (c *SystemCollector) Info() string {
	return "system metrics"
}
