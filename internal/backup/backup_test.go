package backup_test

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HerbHall/authdeck/internal/backup"
	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/testutil"
)

// seedStore writes a small appearance state and returns the store.
func seedStore(t *testing.T) prefs.Store {
	t.Helper()

	s := prefs.NewMemoryStore()
	ctx := context.Background()
	for k, v := range map[string]string{
		"appearance:alice:theme.source":    `{"kind":"catalog","id":"rose"}`,
		"appearance:alice:theme.radius":    "0.75rem",
		"appearance:alice:layout.config":   `{"side":"right"}`,
		"appearance:default:theme.variant": "dark",
	} {
		if err := s.Set(ctx, k, v); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

// verifyStore checks that the restored store has the seeded values.
func verifyStore(t *testing.T, s prefs.Store) {
	t.Helper()

	ctx := context.Background()
	all, err := s.List(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 settings, got %d", len(all))
	}
	v, err := s.Get(ctx, "appearance:alice:theme.source")
	if err != nil {
		t.Fatalf("get preset: %v", err)
	}
	if !strings.Contains(v, `"rose"`) {
		t.Fatalf("expected rose source, got %q", v)
	}
}

func TestBackupRestore(t *testing.T) {
	tests := []struct {
		name       string
		target     func(t *testing.T) prefs.Store
		restoreErr string
		force      bool
	}{
		{
			name:   "into empty memory store",
			target: func(t *testing.T) prefs.Store { return prefs.NewMemoryStore() },
		},
		{
			name: "into empty sqlite store",
			target: func(t *testing.T) prefs.Store {
				s, err := prefs.NewSQLiteStore(context.Background(), testutil.NewStore(t))
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
		},
		{
			name:       "no force existing key",
			target:     seedStore,
			restoreErr: "preference already exists",
		},
		{
			name:   "force existing key",
			force:  true,
			target: seedStore,
		},
	}

	ctx := context.Background()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			archivePath := filepath.Join(t.TempDir(), "nested", "backup.tar.gz")

			m, err := backup.Backup(ctx, seedStore(t), archivePath)
			if err != nil {
				t.Fatalf("unexpected backup error: %v", err)
			}
			if m.Settings != 4 || m.Format != backup.FormatVersion {
				t.Fatalf("manifest = %+v", m)
			}

			target := tc.target(t)
			_, err = backup.Restore(ctx, archivePath, target, tc.force)
			if tc.restoreErr != "" {
				if err == nil {
					t.Fatalf("expected restore error containing %q, got nil", tc.restoreErr)
				}
				if !strings.Contains(err.Error(), tc.restoreErr) {
					t.Fatalf("expected restore error containing %q, got %q", tc.restoreErr, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected restore error: %v", err)
			}
			verifyStore(t, target)
		})
	}
}

func TestRestore_KeepsUnrelatedKeys(t *testing.T) {
	ctx := context.Background()
	archivePath := filepath.Join(t.TempDir(), "backup.tar.gz")
	if _, err := backup.Backup(ctx, seedStore(t), archivePath); err != nil {
		t.Fatal(err)
	}

	target := prefs.NewMemoryStore()
	if err := target.Set(ctx, "appearance:bob:theme.radius", "1rem"); err != nil {
		t.Fatal(err)
	}
	if _, err := backup.Restore(ctx, archivePath, target, false); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if v, _ := target.Get(ctx, "appearance:bob:theme.radius"); v != "1rem" {
		t.Errorf("unrelated key = %q, want 1rem", v)
	}
}

// writeArchive builds a raw archive from name/content pairs.
func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "crafted.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for name, body := range entries {
		hdr := &tar.Header{Name: name, Mode: 0o600, Size: int64(len(body)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRestore_InvalidArchives(t *testing.T) {
	manifest := `{"format":1,"version":"dev","settings":1}`

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.tar.gz") },
			wantErr: "opening archive",
		},
		{
			name: "not gzip",
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "plain.tar.gz")
				if err := os.WriteFile(p, []byte("plain text"), 0o600); err != nil {
					t.Fatal(err)
				}
				return p
			},
			wantErr: "decompressing archive",
		},
		{
			name: "missing settings",
			path: func(t *testing.T) string {
				return writeArchive(t, map[string]string{"manifest.json": manifest})
			},
			wantErr: "missing its manifest or settings",
		},
		{
			name: "path traversal entry",
			path: func(t *testing.T) string {
				return writeArchive(t, map[string]string{"../../etc/passwd": "root"})
			},
			wantErr: "unexpected entry",
		},
		{
			name: "newer format",
			path: func(t *testing.T) string {
				return writeArchive(t, map[string]string{
					"manifest.json": `{"format":99}`,
					"prefs.json":    `[]`,
				})
			},
			wantErr: "newer than supported",
		},
		{
			name: "empty key",
			path: func(t *testing.T) string {
				return writeArchive(t, map[string]string{
					"manifest.json": manifest,
					"prefs.json":    `[{"key":"","value":"x"}]`,
				})
			},
			wantErr: "empty key",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := backup.Restore(context.Background(), tc.path(t), prefs.NewMemoryStore(), false)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}
