package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DeliveryFilterExcludeTerminal = "exclude_terminal"
	DeliveryFilterStatus          = "status"

	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)

type (
	HTTPServer struct {
		Port               string
		RequestTimeout     time.Duration // middleware timeout
		RateLimiterQPS     int           // middleware rate limiter capacity
		RateLimiterBurst   int           // middleware rate limiter refill
		CORSAllowedOrigins []string
		PprofEnabled       bool
		PprofPort          string
	}

	Backend struct {
		BaseURL         string
		TenantID        string
		TenantQuery     bool // also send ?tenant_id=
		Username        string
		Password        string
		RetryMaxElapsed time.Duration
	}

	Poller struct {
		Interval       time.Duration
		DeliveryFilter string
		DeliveryStatus string
	}

	Tracking struct {
		Interval time.Duration
	}

	Simulator struct {
		Steps     int
		Tick      time.Duration
		Amplitude float64
	}

	Reporter struct {
		PushTimeout  time.Duration
		HighAccuracy bool
		Timeout      time.Duration
		MaxAge       time.Duration
	}

	Geolocation struct {
		GPSDAddr string
	}

	Origins struct {
		File string
	}

	Map struct {
		FallbackLat float64
		FallbackLng float64
		Zoom        int
		SpeedMps    float64
	}

	Database struct {
		Enabled  bool
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
		MinConns int
	}

	Journal struct {
		Retention       time.Duration
		CleanupInterval time.Duration
	}

	Metrics struct {
		SystemInterval time.Duration
	}

	Kafka struct {
		Enabled       bool
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DeliveryStatusChanged DeliveryStatusChanged
	}

	DeliveryStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Tracing struct {
		Enabled     bool
		ServiceName string
		Exporter    string
		Endpoint    string
		SampleRatio float64
	}

	Config struct {
		LogLevel    string
		Server      HTTPServer
		Backend     Backend
		Poller      Poller
		Tracking    Tracking
		Simulator   Simulator
		Reporter    Reporter
		Geolocation Geolocation
		Origins     Origins
		Map         Map
		Database    Database
		Journal     Journal
		Metrics     Metrics
		Kafka       Kafka
		Tracing     Tracing
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tenantQuery, err := osGetBool("BACKEND_TENANT_QUERY", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	retryMaxElapsed, err := osGetEnvDuration("BACKEND_RETRY_MAX_ELAPSED", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollInterval, err := osGetEnvDuration("POLL_INTERVAL", 20*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	trackingInterval, err := osGetEnvDuration("TRACKING_INTERVAL", 8*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	simSteps, err := osGetInt("SIMULATOR_STEPS", 30)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	simTick, err := osGetEnvDuration("SIMULATOR_TICK", 200*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	simAmplitude, err := osGetFloat("SIMULATOR_AMPLITUDE", 0.002)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pushTimeout, err := osGetEnvDuration("REPORTER_PUSH_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	highAccuracy, err := osGetBool("REPORTER_HIGH_ACCURACY", true)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	watchTimeout, err := osGetEnvDuration("REPORTER_WATCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxAge, err := osGetEnvDuration("REPORTER_MAX_AGE", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fallbackLat, err := osGetFloat("MAP_FALLBACK_LAT", -12.0464)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fallbackLng, err := osGetFloat("MAP_FALLBACK_LNG", -77.0428)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	zoom, err := osGetInt("MAP_ZOOM", 13)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	speed, err := osGetFloat("ETA_SPEED_MPS", 8.33)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbEnabled, err := osGetBool("JOURNAL_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMaxConns, err := osGetInt("POSTGRES_MAX_CONNS", 4)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMinConns, err := osGetInt("POSTGRES_MIN_CONNS", 1)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	journalRetention, err := osGetEnvDuration("JOURNAL_RETENTION", 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	journalCleanupInterval, err := osGetEnvDuration("JOURNAL_CLEANUP_INTERVAL", time.Hour)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	systemMetricsInterval, err := osGetEnvDuration("SYSTEM_METRICS_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_DELIVERY_STATUS_CHANGED_PROCESS_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tracingEnabled, err := osGetBool("TRACING_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sampleRatio, err := osGetFloat("TRACING_SAMPLE_RATIO", 1)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Server: HTTPServer{
			Port:               os.Getenv("PORT"),
			RequestTimeout:     requestTimeout,
			RateLimiterQPS:     rateLimiterQPS,
			RateLimiterBurst:   rateLimiterBurst,
			CORSAllowedOrigins: osGetList("CORS_ALLOWED_ORIGINS"),
			PprofEnabled:       pprofEnabled,
			PprofPort:          os.Getenv("PPROF_PORT"),
		},
		Backend: Backend{
			BaseURL:         strings.TrimRight(os.Getenv("BACKEND_BASE_URL"), "/"),
			TenantID:        os.Getenv("BACKEND_TENANT_ID"),
			TenantQuery:     tenantQuery,
			Username:        os.Getenv("BACKEND_USERNAME"),
			Password:        os.Getenv("BACKEND_PASSWORD"),
			RetryMaxElapsed: retryMaxElapsed,
		},
		Poller: Poller{
			Interval:       pollInterval,
			DeliveryFilter: osGetString("POLL_DELIVERY_FILTER", DeliveryFilterExcludeTerminal),
			DeliveryStatus: osGetString("POLL_DELIVERY_STATUS", "listo_para_entrega"),
		},
		Tracking: Tracking{
			Interval: trackingInterval,
		},
		Simulator: Simulator{
			Steps:     simSteps,
			Tick:      simTick,
			Amplitude: simAmplitude,
		},
		Reporter: Reporter{
			PushTimeout:  pushTimeout,
			HighAccuracy: highAccuracy,
			Timeout:      watchTimeout,
			MaxAge:       maxAge,
		},
		Geolocation: Geolocation{
			GPSDAddr: os.Getenv("GPSD_ADDR"),
		},
		Origins: Origins{
			File: os.Getenv("ORIGINS_FILE"),
		},
		Map: Map{
			FallbackLat: fallbackLat,
			FallbackLng: fallbackLng,
			Zoom:        zoom,
			SpeedMps:    speed,
		},
		Database: Database{
			Enabled:  dbEnabled,
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: dbMaxConns,
			MinConns: dbMinConns,
		},
		Journal: Journal{
			Retention:       journalRetention,
			CleanupInterval: journalCleanupInterval,
		},
		Metrics: Metrics{
			SystemInterval: systemMetricsInterval,
		},
		Kafka: Kafka{
			Enabled:       kafkaEnabled,
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				DeliveryStatusChanged: DeliveryStatusChanged{
					ProcessTimeout: statusChangedTimeout,
				},
			},
		},
		Tracing: Tracing{
			Enabled:     tracingEnabled,
			ServiceName: osGetString("TRACING_SERVICE_NAME", "dispatch-console"),
			Exporter:    osGetString("TRACING_EXPORTER", TracingExporterStdout),
			Endpoint:    os.Getenv("TRACING_ENDPOINT"),
			SampleRatio: sampleRatio,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}

	switch cfg.Poller.DeliveryFilter {
	case DeliveryFilterExcludeTerminal:
	case DeliveryFilterStatus:
		if cfg.Poller.DeliveryStatus == "" {
			return errors.New("POLL_DELIVERY_STATUS is required when POLL_DELIVERY_FILTER=status")
		}
	default:
		return fmt.Errorf("POLL_DELIVERY_FILTER must be %q or %q, got %q",
			DeliveryFilterExcludeTerminal, DeliveryFilterStatus, cfg.Poller.DeliveryFilter)
	}

	if cfg.Tracking.Interval <= 0 {
		return errors.New("TRACKING_INTERVAL must be positive")
	}

	if cfg.Simulator.Steps <= 0 {
		return errors.New("SIMULATOR_STEPS must be positive")
	}
	if cfg.Simulator.Tick <= 0 {
		return errors.New("SIMULATOR_TICK must be positive")
	}

	if cfg.Reporter.PushTimeout <= 0 {
		return errors.New("REPORTER_PUSH_TIMEOUT must be positive")
	}

	if cfg.Map.SpeedMps <= 0 {
		return errors.New("ETA_SPEED_MPS must be positive")
	}

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" {
			return errors.New("POSTGRES_HOST is required")
		}
		if cfg.Database.Port == "" {
			return errors.New("POSTGRES_PORT is required")
		}
		if cfg.Database.User == "" {
			return errors.New("POSTGRES_USER is required")
		}
		if cfg.Database.Password == "" {
			return errors.New("POSTGRES_PASSWORD is required")
		}
		if cfg.Database.DBName == "" {
			return errors.New("POSTGRES_DB is required")
		}
		if cfg.Database.SSLMode == "" {
			return errors.New("POSTGRES_SSLMODE is required")
		}
		if cfg.Journal.Retention <= 0 {
			return errors.New("JOURNAL_RETENTION must be positive")
		}
		if cfg.Journal.CleanupInterval <= 0 {
			return errors.New("JOURNAL_CLEANUP_INTERVAL must be positive")
		}
	}

	if cfg.Metrics.SystemInterval <= 0 {
		return errors.New("SYSTEM_METRICS_INTERVAL must be positive")
	}

	if cfg.Kafka.Enabled {
		if cfg.Kafka.Brokers == "" {
			return errors.New("KAFKA_BROKERS is required")
		}
		if cfg.Kafka.Topic == "" {
			return errors.New("KAFKA_TOPIC is required")
		}
		if cfg.Kafka.ConsumerGroup == "" {
			return errors.New("KAFKA_CONSUMER_GROUP is required")
		}
		if cfg.Kafka.Sarama.Version == "" {
			return errors.New("KAFKA_SARAMA_VERSION is required")
		}
	}

	if cfg.Tracing.Enabled {
		switch cfg.Tracing.Exporter {
		case TracingExporterStdout:
		case TracingExporterOTLP:
			if cfg.Tracing.Endpoint == "" {
				return errors.New("TRACING_ENDPOINT is required for the otlp exporter")
			}
		default:
			return fmt.Errorf("unknown TRACING_EXPORTER %q", cfg.Tracing.Exporter)
		}
	}

	return nil
}

func osGetString(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	var res []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string, def float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string, def bool) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
