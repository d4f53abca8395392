package origins

import (
	"fmt"
	"strings"
	"sync"

	"console/internal/entities"
	"console/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type originConfig struct {
	Lat float64 `mapstructure:"lat"`
	Lng float64 `mapstructure:"lng"`
}

type fileConfig struct {
	Origins map[string]originConfig `mapstructure:"origins"`
}

// Defaults is the built-in origin (store location) per tenant.
func Defaults() map[string]entities.Coordinate {
	return map[string]entities.Coordinate{
		"tenant_pq_barranco":  {Lat: -12.1372, Lng: -77.0220},
		"tenant_pq_puruchuco": {Lat: -12.0325, Lng: -76.9302},
		"tenant_pq_vmt":       {Lat: -12.1630, Lng: -76.9635},
		"tenant_pq_jiron":     {Lat: -12.0560, Lng: -77.0370},
	}
}

// Table resolves a tenant to its origin. Entries from a file override the defaults.
type Table struct {
	log handlerLogger

	mu        sync.RWMutex
	origins   map[string]entities.Coordinate
	listeners []func()
}

func New(log handlerLogger) *Table {
	return &Table{
		log:     log.With(logger.NewField("component", "origins")),
		origins: Defaults(),
	}
}

// Load reads a YAML origin file and keeps watching it. An empty path keeps
// only the defaults.
//
//	origins:
//	  tenant_pq_barranco: {lat: -12.1372, lng: -77.0220}
func Load(log handlerLogger, path string) (*Table, error) {
	t := New(log)
	if path == "" {
		return t, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read origins file %s: %w", path, err)
	}

	if err := t.apply(v); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if err := t.apply(v); err != nil {
			t.log.Error("reload origins",
				logger.NewField("file", e.Name),
				logger.NewField("error", err),
			)
			return
		}
		t.log.Info("origins reloaded", logger.NewField("file", e.Name))
		t.notify()
	})
	v.WatchConfig()

	return t, nil
}

func (t *Table) Lookup(tenantID string) (entities.Coordinate, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.origins[strings.ToLower(strings.TrimSpace(tenantID))]
	return c, ok
}

func (t *Table) All() map[string]entities.Coordinate {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]entities.Coordinate, len(t.origins))
	for k, v := range t.origins {
		out[k] = v
	}
	return out
}

// OnChange registers fn to run after every successful reload.
func (t *Table) OnChange(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

func (t *Table) apply(v *viper.Viper) error {
	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode origins: %w", err)
	}

	merged := Defaults()
	for tenant, o := range cfg.Origins {
		c := entities.Coordinate{Lat: o.Lat, Lng: o.Lng}
		if !c.Valid() {
			return fmt.Errorf("origin for %s: invalid coordinate %v,%v", tenant, o.Lat, o.Lng)
		}
		merged[strings.ToLower(tenant)] = c
	}

	t.mu.Lock()
	t.origins = merged
	t.mu.Unlock()
	return nil
}

func (t *Table) notify() {
	t.mu.RLock()
	listeners := make([]func(), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
