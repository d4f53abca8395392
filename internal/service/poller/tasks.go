package poller

import (
	"context"
	"time"
)

// Fetch failures are handled inside the fetch routine, so both tasks always
// report success to the worker.

type ridersTask struct {
	poller   *Poller
	interval time.Duration
}

func (t *ridersTask) TTL() time.Duration {
	return t.interval
}

func (t *ridersTask) Do(ctx context.Context) error {
	_ = t.poller.ReloadRiders(ctx)
	return nil
}

func (t *ridersTask) Info() string {
	return "riders refresh"
}

type activesTask struct {
	poller   *Poller
	interval time.Duration
}

func (t *activesTask) TTL() time.Duration {
	return t.interval
}

func (t *activesTask) Do(ctx context.Context) error {
	_ = t.poller.ReloadActives(ctx)
	return nil
}

func (t *activesTask) Info() string {
	return "active deliveries refresh"
}
