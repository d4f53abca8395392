package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc is called after a failed attempt that will be retried.
type NotifyFunc func(err error, wait time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 means bounded only by MaxElapsedTime.
	MaxRetries uint64

	// nil retries every error; otherwise only errors for which it returns true.
	ShouldRetry ShouldRetryFunc

	Notify NotifyFunc
}
