// Package testutil provides database fixtures for store tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun"

	"github.com/dennoAiden/swiper-venture/internal/config"
	"github.com/dennoAiden/swiper-venture/internal/database"
	"github.com/dennoAiden/swiper-venture/internal/migrate"
)

// TestDB holds test database resources.
type TestDB struct {
	Pool *pgxpool.Pool
	DB   *bun.DB

	tx    bun.Tx
	hasTx bool
}

// SetupTestDB connects using the POSTGRES_* environment and applies migrations.
func SetupTestDB(ctx context.Context) (*TestDB, error) {
	cfg, err := config.NewConfig(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	pool, err := database.Open(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	db := database.Wrap(pool)
	if err := migrate.RunWithDB(ctx, db.DB); err != nil {
		pool.Close()
		return nil, err
	}

	return &TestDB{Pool: pool, DB: db}, nil
}

// Close releases test database resources.
func (t *TestDB) Close() {
	_ = t.RollbackTestTx()
	_ = t.DB.Close()
	t.Pool.Close()
}

// GetDB returns the active test transaction, or the base DB if none.
func (t *TestDB) GetDB() bun.IDB {
	if t.hasTx {
		return t.tx
	}
	return t.DB
}

// BeginTestTx starts a transaction that RollbackTestTx discards.
func (t *TestDB) BeginTestTx(ctx context.Context) error {
	if t.hasTx {
		return fmt.Errorf("transaction already started")
	}
	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	t.tx = tx
	t.hasTx = true
	return nil
}

// RollbackTestTx rolls back the current transaction, if any.
func (t *TestDB) RollbackTestTx() error {
	if !t.hasTx {
		return nil
	}
	t.hasTx = false
	return t.tx.Rollback()
}
