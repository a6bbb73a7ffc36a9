package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Prices are NUMERIC on postgres and TEXT on sqlite so decimals survive
// without float rounding.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		category    TEXT NOT NULL DEFAULT '',
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		email         TEXT NOT NULL,
		phone         TEXT NOT NULL,
		address       TEXT NOT NULL,
		city          TEXT NOT NULL,
		zip_code      TEXT NOT NULL,
		total_price   NUMERIC(12,2) NOT NULL,
		status        TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		product_id   TEXT NOT NULL,
		product_name TEXT NOT NULL,
		unit_price   NUMERIC(12,2) NOT NULL,
		quantity     INTEGER NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS order_idempotency (
		idempotency_key TEXT PRIMARY KEY,
		order_id        TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		stock       INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image_url   TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMP NOT NULL,
		updated_at  TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		email         TEXT NOT NULL,
		phone         TEXT NOT NULL,
		address       TEXT NOT NULL,
		city          TEXT NOT NULL,
		zip_code      TEXT NOT NULL,
		total_price   TEXT NOT NULL,
		status        TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL,
		updated_at    TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS order_lines (
		order_id     TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		product_id   TEXT NOT NULL,
		product_name TEXT NOT NULL,
		unit_price   TEXT NOT NULL,
		quantity     INTEGER NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS order_idempotency (
		idempotency_key TEXT PRIMARY KEY,
		order_id        TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		created_at      TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// Migrate applies the schema for the dialect. Statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts := postgresSchema
	if dialect == SQLite {
		stmts = sqliteSchema
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
