package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDataSource(t *testing.T) {
	t.Run("explicit dsn wins", func(t *testing.T) {
		cfg := Config{Driver: "postgres", DSN: "postgres://x"}
		assert.Equal(t, "postgres://x", cfg.DataSource())
	})

	t.Run("postgres url from parts", func(t *testing.T) {
		cfg := Config{Driver: "postgres", Host: "db", Port: 5433, User: "u", Pass: "p@ss", DB: "shop"}
		assert.Equal(t, "postgres://u:p%40ss@db:5433/shop?sslmode=disable", cfg.DataSource())
	})

	t.Run("sqlite default file", func(t *testing.T) {
		assert.Equal(t, "file:storefront.db", Config{Driver: "sqlite"}.DataSource())
	})
}

func TestOpenMemoryAppliesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := OpenMemory(ctx)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, SQLite, db.Dialect)

	for _, table := range []string{"products", "orders", "order_lines", "order_idempotency", "settings"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=$1`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	// second run is a no-op
	require.NoError(t, Migrate(ctx, db.DB, SQLite))
}

func TestExecTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db, err := OpenMemory(ctx)
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	err = db.ExecTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO settings(key, value) VALUES ($1, $2)`, "k", "v"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM settings`).Scan(&n))
	assert.Zero(t, n)
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db, err := OpenMemory(ctx)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO settings(key, value) VALUES ($1, $2)`, "k", "v")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO settings(key, value) VALUES ($1, $2)`, "k", "w")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", err)))

	_, err = db.ExecContext(ctx, `INSERT INTO order_lines(order_id, position, product_id, product_name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`, "missing", 0, "p", "P", "1", 1)
	require.Error(t, err)
	assert.False(t, IsUniqueViolation(err), "foreign key failures are not unique violations")

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate")))
	assert.False(t, IsUniqueViolation(nil))
}
