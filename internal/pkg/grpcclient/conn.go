package grpcclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"console/pkg/logger"
	retrierconfig "console/pkg/retrier"
	"console/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2

	stateWait = 2 * time.Second
)

var ErrNotReady = errors.New("grpc connection is not ready")

// NewConnClient открывает соединение с коллектором трейсов и ждёт состояния Ready.
func NewConnClient(ctx context.Context, log logger.Logger, target string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("target", target),
	)

	err = waitReady(ctx, grpcLog, conn)
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

func waitReady(ctx context.Context, log logger.Logger, conn *grpc.ClientConn) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting gRPC connection")

		conn.Connect()
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}

		waitCtx, cancel := context.WithTimeout(ctx, stateWait)
		defer cancel()
		conn.WaitForStateChange(waitCtx, state)

		if state = conn.GetState(); state != connectivity.Ready {
			return fmt.Errorf("%w: %s", ErrNotReady, state)
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("gRPC connection failed after retries")
		return fmt.Errorf("failed to establish gRPC connection: %w", err)
	}

	log.With(logger.NewField(
		"attempts", attempt),
	).Info("gRPC connection established")
	return nil
}
