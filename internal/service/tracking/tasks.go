package tracking

import (
	"context"
	"time"
)

type refreshTask struct {
	tracker  *Tracker
	interval time.Duration
}

func (t *refreshTask) TTL() time.Duration {
	return t.interval
}

// Do never fails, refresh errors are logged by the tracker.
func (t *refreshTask) Do(ctx context.Context) error {
	_, _ = t.tracker.Refresh(ctx)
	return nil
}

func (t *refreshTask) Info() string {
	return "track refresh"
}
