package journal

import (
	"context"
	"fmt"
	"time"

	"console/internal/entities"
	"console/internal/repository"
	"console/internal/service/journal"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	locationsTable   = "location_samples"
	simulationsTable = "simulation_runs"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateLocation(ctx context.Context, sample entities.LocationSample) (int64, error) {
	sampleDB := LocationFromDomain(sample)

	query := `
		INSERT INTO location_samples (delivery_id, lat, lng, accuracy, source, delivered, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		sampleDB.DeliveryID,
		sampleDB.Lat,
		sampleDB.Lng,
		sampleDB.Accuracy,
		sampleDB.Source,
		sampleDB.Delivered,
		sampleDB.RecordedAt,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return 0, fmt.Errorf("%w: %s", journal.ErrInvalidCoordinate, repository.ConstraintName(err))
		}
		return 0, fmt.Errorf("unexpected journal repository create location error: %w", err)
	}

	return id, nil
}

func (r *Repository) CreateSimulation(ctx context.Context, run entities.SimulationRun) error {
	runDB := SimulationFromDomain(run)

	query := `
		INSERT INTO simulation_runs (id, delivery_id, origin_lat, origin_lng, dest_lat, dest_lng, points, outcome, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		runDB.ID,
		runDB.DeliveryID,
		runDB.OriginLat,
		runDB.OriginLng,
		runDB.DestLat,
		runDB.DestLng,
		runDB.Points,
		runDB.Outcome,
		runDB.StartedAt,
		runDB.FinishedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return journal.ErrDuplicateRun
		}
		return fmt.Errorf("unexpected journal repository create simulation error: %w", err)
	}

	return nil
}

// ListLocations returns the newest samples first.
func (r *Repository) ListLocations(ctx context.Context, deliveryID string, limit uint64) ([]entities.LocationSample, error) {
	builder := qb.
		Select("id", "delivery_id", "lat", "lng", "accuracy", "source", "delivered", "recorded_at").
		From(locationsTable).
		Where(sq.Eq{"delivery_id": deliveryID}).
		OrderBy("recorded_at DESC", "id DESC").
		Limit(limit)

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected journal repository list locations error: %w", err)
	}
	defer rows.Close()

	samples := make([]entities.LocationSample, 0)
	for rows.Next() {
		var sampleDB LocationSampleDB
		err := rows.Scan(
			&sampleDB.ID,
			&sampleDB.DeliveryID,
			&sampleDB.Lat,
			&sampleDB.Lng,
			&sampleDB.Accuracy,
			&sampleDB.Source,
			&sampleDB.Delivered,
			&sampleDB.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected journal repository scan location error: %w", err)
		}
		samples = append(samples, LocationToDomain(&sampleDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected journal repository rows error: %w", err)
	}

	return samples, nil
}

// ListSimulations returns the newest runs first.
func (r *Repository) ListSimulations(ctx context.Context, deliveryID string, limit uint64) ([]entities.SimulationRun, error) {
	builder := qb.
		Select("id", "delivery_id", "origin_lat", "origin_lng", "dest_lat", "dest_lng", "points", "outcome", "started_at", "finished_at").
		From(simulationsTable).
		Where(sq.Eq{"delivery_id": deliveryID}).
		OrderBy("started_at DESC").
		Limit(limit)

	rows, err := r.querier.QueryBuilder(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected journal repository list simulations error: %w", err)
	}
	defer rows.Close()

	runs := make([]entities.SimulationRun, 0)
	for rows.Next() {
		var runDB SimulationRunDB
		err := rows.Scan(
			&runDB.ID,
			&runDB.DeliveryID,
			&runDB.OriginLat,
			&runDB.OriginLng,
			&runDB.DestLat,
			&runDB.DestLng,
			&runDB.Points,
			&runDB.Outcome,
			&runDB.StartedAt,
			&runDB.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected journal repository scan simulation error: %w", err)
		}
		runs = append(runs, SimulationToDomain(&runDB))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected journal repository rows error: %w", err)
	}

	return runs, nil
}

func (r *Repository) DeleteLocationsBefore(ctx context.Context, before time.Time) (int64, error) {
	return r.deleteBefore(ctx, locationsTable, "recorded_at", before)
}

func (r *Repository) DeleteSimulationsBefore(ctx context.Context, before time.Time) (int64, error) {
	return r.deleteBefore(ctx, simulationsTable, "started_at", before)
}

func (r *Repository) deleteBefore(ctx context.Context, table, column string, before time.Time) (int64, error) {
	builder := qb.
		Delete(table).
		Where(sq.Lt{column: before})

	result, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		return 0, fmt.Errorf("unexpected journal repository delete %s error: %w", table, err)
	}

	return result.RowsAffected(), nil
}
