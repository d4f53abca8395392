package journal_cleanup

import (
	"context"
	"time"

	"console/pkg/logger"
)

type Service interface {
	Cleanup(ctx context.Context) (int64, error)
}

type JournalCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewJournalCleanup(log logger.Logger, service Service, interval time.Duration) *JournalCleanup {
	return &JournalCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (j *JournalCleanup) TTL() time.Duration {
	return j.interval
}

func (j *JournalCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	removed, err := j.service.Cleanup(ctxWithTimeout)

	if removed > 0 {
		j.log.With(
			logger.NewField("removed_rows", removed),
		).Info("journal cleanup")
	}

	return err
}

func (j *JournalCleanup) Info() string {
	return "journal cleanup"
}
