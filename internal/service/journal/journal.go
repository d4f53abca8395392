package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"console/internal/entities"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// Journal keeps a history of the positions pushed for each delivery and of
// the simulations run on the map.
type Journal struct {
	repository Repository
	txManager  TxManager
	retention  time.Duration
	now        func() time.Time
}

func New(repository Repository, txManager TxManager, retention time.Duration) *Journal {
	return &Journal{
		repository: repository,
		txManager:  txManager,
		retention:  retention,
		now:        time.Now,
	}
}

func (j *Journal) RecordLocation(ctx context.Context, sample entities.LocationSample) error {
	if strings.TrimSpace(sample.DeliveryID) == "" {
		return ErrInvalidDeliveryID
	}
	if !sample.Coordinate.Valid() {
		return ErrInvalidCoordinate
	}
	if sample.At.IsZero() {
		sample.At = j.now()
	}
	if sample.Source == "" {
		sample.Source = entities.SourceManual
	}

	_, err := j.repository.CreateLocation(ctx, sample)
	if err != nil {
		return fmt.Errorf("record location: %w", err)
	}
	return nil
}

// RecordSimulation stores a finished run. Runs started without a delivery are kept too.
func (j *Journal) RecordSimulation(ctx context.Context, run entities.SimulationRun) error {
	if run.ID == "" || run.StartedAt.IsZero() {
		return ErrInvalidRun
	}
	if !run.Origin.Valid() || !run.Destination.Valid() {
		return ErrInvalidCoordinate
	}

	err := j.repository.CreateSimulation(ctx, run)
	if err != nil {
		return fmt.Errorf("record simulation: %w", err)
	}
	return nil
}

// Locations returns the newest samples of a delivery first. limit 0 means the default.
func (j *Journal) Locations(ctx context.Context, deliveryID string, limit uint64) ([]entities.LocationSample, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}

	samples, err := j.repository.ListLocations(ctx, deliveryID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return samples, nil
}

func (j *Journal) Simulations(ctx context.Context, deliveryID string, limit uint64) ([]entities.SimulationRun, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}

	runs, err := j.repository.ListSimulations(ctx, deliveryID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	return runs, nil
}

// Cleanup drops everything older than the retention window in one transaction
// and returns the number of rows removed.
func (j *Journal) Cleanup(ctx context.Context) (int64, error) {
	before := j.now().Add(-j.retention)

	var removed int64
	err := j.txManager.Do(ctx, func(ctx context.Context) error {
		locations, err := j.repository.DeleteLocationsBefore(ctx, before)
		if err != nil {
			return err
		}

		simulations, err := j.repository.DeleteSimulationsBefore(ctx, before)
		if err != nil {
			return err
		}

		removed = locations + simulations
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("journal cleanup: %w", err)
	}

	return removed, nil
}

func clampLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return defaultLimit
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}
