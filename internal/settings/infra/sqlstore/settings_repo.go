package sqlstore

import (
	"context"
	"database/sql"

	"github.com/dwikikusuma/storefront/pkg/database"
)

type SettingsRepo struct {
	db *database.DB
}

func NewSettingsRepo(db *database.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *SettingsRepo) Upsert(ctx context.Context, values map[string]string) error {
	return r.write(ctx, values,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`)
}

func (r *SettingsRepo) InsertMissing(ctx context.Context, values map[string]string) error {
	return r.write(ctx, values,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO NOTHING`)
}

func (r *SettingsRepo) write(ctx context.Context, values map[string]string, stmt string) error {
	return r.db.ExecTx(ctx, func(tx *sql.Tx) error {
		for k, v := range values {
			if _, err := tx.ExecContext(ctx, stmt, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}
