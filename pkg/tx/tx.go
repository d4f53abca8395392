package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	level    pgx.TxIsoLevel
}

type Option func(*Manager)

// WithIsoLevel задаёт уровень изоляции для Do. По умолчанию Serializable.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.level = level
	}
}

// New создаёт новый менеджер транзакций.
func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    pgx.Serializable,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: m.level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

