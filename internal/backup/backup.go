// Package backup writes and restores preference archives. An archive is a
// gzipped tar holding a manifest and every stored setting, so it can move
// preferences between the sqlite, redis and memory backends.
package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/version"
)

// Archive entry names.
const (
	manifestEntry = "manifest.json"
	settingsEntry = "prefs.json"
)

// FormatVersion is bumped when the archive layout changes.
const FormatVersion = 1

// maxEntrySize bounds a single decompressed entry.
const maxEntrySize = 64 << 20

// Manifest describes an archive.
type Manifest struct {
	Format    int       `json:"format"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Settings  int       `json:"settings"`
}

// Backup writes every setting in store to a new archive at archivePath and
// returns the manifest it wrote.
func Backup(ctx context.Context, store prefs.Store, archivePath string) (Manifest, error) {
	settings, err := store.List(ctx, "")
	if err != nil {
		return Manifest{}, fmt.Errorf("listing preferences: %w", err)
	}

	m := Manifest{
		Format:    FormatVersion,
		Version:   version.Short(),
		CreatedAt: time.Now().UTC(),
		Settings:  len(settings),
	}

	if dir := filepath.Dir(archivePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return Manifest{}, fmt.Errorf("creating archive directory: %w", err)
		}
	}
	f, err := os.OpenFile(archivePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return Manifest{}, fmt.Errorf("creating archive: %w", err)
	}

	if err := write(f, m, settings); err != nil {
		_ = f.Close()
		_ = os.Remove(archivePath)
		return Manifest{}, err
	}
	if err := f.Close(); err != nil {
		return Manifest{}, fmt.Errorf("closing archive: %w", err)
	}
	return m, nil
}

func write(w io.Writer, m Manifest, settings []prefs.Setting) error {
	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)

	if err := addJSON(tw, manifestEntry, m, m.CreatedAt); err != nil {
		return err
	}
	if err := addJSON(tw, settingsEntry, settings, m.CreatedAt); err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("compressing archive: %w", err)
	}
	return nil
}

func addJSON(tw *tar.Writer, name string, v any, modTime time.Time) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	hdr := &tar.Header{
		Name:     name,
		Mode:     0o600,
		Size:     int64(len(data)),
		ModTime:  modTime,
		Typeflag: tar.TypeReg,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
