package geolocation

import (
	"context"
	"errors"
	"time"

	"console/internal/entities"
)

var (
	ErrUnavailable = errors.New("geolocation unavailable")
	ErrTimeout     = errors.New("geolocation timeout")
	ErrNoFix       = errors.New("no position fix")
)

// Options mirror what a device position request accepts. MaxAge 0 means a
// cached fix is never reused.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaxAge       time.Duration
}

type Position struct {
	Coordinate entities.Coordinate
	Accuracy   float64 // meters, 0 when unknown
	At         time.Time
}

// Watch is the handle of a running position subscription. Clear stops it and
// must not block; it is safe to call more than once.
type Watch interface {
	Clear()
}

type Locator interface {
	Available() bool
	CurrentPosition(ctx context.Context, opts Options) (Position, error)
	Watch(opts Options, onUpdate func(Position), onError func(error)) (Watch, error)
}

// Unavailable is the Locator used when no position source is configured.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) CurrentPosition(context.Context, Options) (Position, error) {
	return Position{}, ErrUnavailable
}

func (Unavailable) Watch(Options, func(Position), func(error)) (Watch, error) {
	return nil, ErrUnavailable
}
