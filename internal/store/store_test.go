package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "authdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTable(name string) func(context.Context, *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "CREATE TABLE "+name+" (id INTEGER PRIMARY KEY)")
		return err
	}
}

func tableExists(t *testing.T, s *SQLiteStore, name string) bool {
	t.Helper()
	var n int
	err := s.DB().QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "authdeck.db")
	s, err := New(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist")
	assert.NoError(t, s.Ping(context.Background()))

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestNew_DirectoryBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := New(filepath.Join(blocker, "sub", "authdeck.db"))
	assert.Error(t, err)
}

func TestClose(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.Error(t, s.Ping(context.Background()))
}

func TestTx(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	_, err := s.DB().ExecContext(ctx, "CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)")
	require.NoError(t, err)

	require.NoError(t, s.Tx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO kv VALUES ('theme', 'rose')")
		return err
	}))

	boom := errors.New("boom")
	err = s.Tx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO kv VALUES ('radius', '1rem')"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM kv").Scan(&n))
	assert.Equal(t, 1, n, "rolled back insert must not persist")
}

func TestMigrate(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	runs := 0
	counted := func(ctx context.Context, tx *sql.Tx) error {
		runs++
		return createTable("prefs_v1")(ctx, tx)
	}
	steps := []Migration{
		{Version: 1, Description: "create prefs_v1", Up: counted},
		{Version: 2, Description: "create prefs_v2", Up: createTable("prefs_v2")},
	}

	require.NoError(t, s.Migrate(ctx, "prefs", steps))
	require.NoError(t, s.Migrate(ctx, "prefs", steps))
	assert.Equal(t, 1, runs, "applied migration ran twice")
	assert.True(t, tableExists(t, s, "prefs_v1"))
	assert.True(t, tableExists(t, s, "prefs_v2"))

	// Version numbers are per component.
	require.NoError(t, s.Migrate(ctx, "sessions", []Migration{
		{Version: 1, Description: "create sessions", Up: createTable("sessions")},
	}))
	assert.True(t, tableExists(t, s, "sessions"))
}

func TestMigrate_FailureKeepsEarlierSteps(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	err := s.Migrate(ctx, "prefs", []Migration{
		{Version: 1, Description: "good", Up: createTable("good")},
		{Version: 2, Description: "bad", Up: func(ctx context.Context, tx *sql.Tx) error {
			if err := createTable("half")(ctx, tx); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "NOT VALID SQL")
			return err
		}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prefs/2 (bad)")
	assert.True(t, tableExists(t, s, "good"))
	assert.False(t, tableExists(t, s, "half"), "failed step must roll back")

	// A fixed step 2 applies on the next run.
	require.NoError(t, s.Migrate(ctx, "prefs", []Migration{
		{Version: 1, Description: "good", Up: createTable("good")},
		{Version: 2, Description: "fixed", Up: createTable("half")},
	}))
	assert.True(t, tableExists(t, s, "half"))
}

func TestMigrate_RejectsUnorderedVersions(t *testing.T) {
	s := openTemp(t)
	err := s.Migrate(context.Background(), "prefs", []Migration{
		{Version: 2, Description: "two", Up: createTable("two")},
		{Version: 1, Description: "one", Up: createTable("one")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of order")
	assert.False(t, tableExists(t, s, "two"))
}

func storedVersion(t *testing.T, s *SQLiteStore) string {
	t.Helper()
	var v string
	require.NoError(t, s.DB().QueryRow("SELECT app_version FROM _schema_meta WHERE id = 1").Scan(&v))
	return v
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		current    string
		wantErr    error
		wantStored string
	}{
		{"first run", "", "v1.2.0", nil, "v1.2.0"},
		{"same version", "v1.2.0", "v1.2.0", nil, "v1.2.0"},
		{"upgrade", "v1.2.0", "v1.3.0", nil, "v1.3.0"},
		{"patch upgrade without prefix", "1.2.0", "1.2.1", nil, "1.2.1"},
		{"downgrade refused", "v2.0.0", "v1.9.9", ErrNewerSchema, "v2.0.0"},
		{"dev binary", "v2.0.0", "dev", nil, "dev"},
		{"dev database", "dev", "v0.1.0", nil, "v0.1.0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := openTemp(t)
			ctx := context.Background()
			if tc.stored != "" {
				require.NoError(t, s.CheckVersion(ctx, tc.stored))
			}

			err := s.CheckVersion(ctx, tc.current)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantStored, storedVersion(t, s))
		})
	}
}
