package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"console/internal/pkg/config"
	"console/internal/pkg/grpcclient"
	"console/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const shutdownTimeout = 5 * time.Second

type ShutdownFunc func(context.Context) error

// Init installs the global tracer provider. With tracing disabled a noop
// provider is installed and the returned shutdown does nothing.
func Init(ctx context.Context, log logger.Logger, cfg config.Tracing) (ShutdownFunc, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if !cfg.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		log.Info("tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	exp, closeExporter, err := exporterFromConfig(ctx, log, cfg)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled",
		logger.NewField("exporter", cfg.Exporter),
		logger.NewField("service_name", cfg.ServiceName),
		logger.NewField("sample_ratio", cfg.SampleRatio),
	)

	return func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), closeExporter())
	}, nil
}

func exporterFromConfig(ctx context.Context, log logger.Logger, cfg config.Tracing) (sdktrace.SpanExporter, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Exporter {
	case config.TracingExporterStdout, "":
		exp, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stdout),
			stdouttrace.WithoutTimestamps(),
		)
		return exp, noClose, err
	case config.TracingExporterOTLP:
		conn, err := grpcclient.NewConnClient(ctx, log, cfg.Endpoint)
		if err != nil {
			return nil, nil, fmt.Errorf("otlp collector: %w", err)
		}
		exp, err := otlptrace.New(ctx, otlptracegrpc.NewClient(otlptracegrpc.WithGRPCConn(conn)))
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("otlp exporter: %w", err)
		}
		return exp, conn.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported tracing exporter: %s", cfg.Exporter)
	}
}

// Shutdown flushes pending spans within a bounded time; failures are only logged.
func Shutdown(shutdown ShutdownFunc, log logger.Logger) {
	if shutdown == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn("tracing shutdown failed", logger.NewField("error", err))
	}
}
