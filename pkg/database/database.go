package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

type Config struct {
	Driver string
	DSN    string

	Host string
	Port int
	User string
	Pass string
	DB   string
}

// DataSource returns the DSN, building a postgres URL from the individual
// fields when no DSN was configured.
func (c Config) DataSource() string {
	if strings.TrimSpace(c.DSN) != "" {
		return c.DSN
	}
	if c.dialect() == SQLite {
		return "file:storefront.db"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Pass),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c Config) dialect() Dialect {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case "sqlite", "sqlite3":
		return SQLite
	default:
		return Postgres
	}
}

// DB is a *sql.DB that remembers which dialect it talks to.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Open connects, pings and applies migrations.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	dialect := cfg.dialect()

	var (
		db  *sql.DB
		err error
	)
	switch dialect {
	case SQLite:
		db, err = openSQLite(cfg.DataSource())
	default:
		db, err = openPostgres(cfg.DataSource())
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := Migrate(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &DB{DB: db, Dialect: dialect}, nil
}

// OpenMemory opens a private in-memory SQLite database with the schema applied.
func OpenMemory(ctx context.Context) (*DB, error) {
	return Open(ctx, Config{Driver: string(SQLite), DSN: ":memory:"})
}

func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func openSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// single writer; also keeps a :memory: database alive on one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// ExecTx runs fn inside a transaction, rolling back when fn fails.
func (d *DB) ExecTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
