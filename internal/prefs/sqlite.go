package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HerbHall/authdeck/internal/store"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists preferences in the shared SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func migrations() []store.Migration {
	return []store.Migration{
		{
			Version:     1,
			Description: "create preferences table",
			Up: func(ctx context.Context, tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS preferences (
						key        TEXT     PRIMARY KEY,
						value      TEXT     NOT NULL,
						updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
					)`)
				return err
			},
		},
	}
}

// NewSQLiteStore applies the preferences migrations and returns the store.
func NewSQLiteStore(ctx context.Context, db *store.SQLiteStore) (*SQLiteStore, error) {
	if err := db.Migrate(ctx, "prefs", migrations()); err != nil {
		return nil, fmt.Errorf("migrate prefs: %w", err)
	}
	return &SQLiteStore{db: db.DB()}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", k); err != nil {
			return fmt.Errorf("delete preference %q: %w", k, err)
		}
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, prefix string) ([]Setting, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, value, updated_at FROM preferences WHERE substr(key, 1, ?) = ? ORDER BY key",
		len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	out := make([]Setting, 0)
	for rows.Next() {
		var st Setting
		if err := rows.Scan(&st.Key, &st.Value, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
