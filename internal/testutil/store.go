package testutil

import (
	"path/filepath"
	"testing"

	"github.com/HerbHall/authdeck/internal/store"
)

// NewStore opens a SQLite database in a temporary directory and closes it
// when the test ends.
func NewStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "authdeck-test.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
