package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"console/internal/pkg/config"
	"console/internal/pkg/postgres"
	"console/migrations"
	"console/pkg/logger/zap_adapter"
	"console/pkg/querier"
	"console/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

func setup() {
	querierOnce.Do(func() {
		// .env.test is loaded by the Makefile
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		err = postgres.Migrate(ctx, zapLogger, cfg, migrations.FS, postgres.MigrateUp)
		if err != nil {
			panic(err)
		}

		poolInstance, err = postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance, tx.WithIsoLevel(pgx.ReadCommitted))
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE location_samples, simulation_runs RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
