package backup

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/HerbHall/authdeck/internal/prefs"
)

// Restore loads an archive into store. It refuses to overwrite keys that
// already hold a value unless force is true. Keys absent from the archive
// are left alone.
func Restore(ctx context.Context, archivePath string, store prefs.Store, force bool) (Manifest, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return Manifest{}, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	m, settings, err := read(f)
	if err != nil {
		return Manifest{}, err
	}

	if !force {
		for _, s := range settings {
			_, err := store.Get(ctx, s.Key)
			switch {
			case err == nil:
				return Manifest{}, fmt.Errorf("preference already exists (use --force to overwrite): %s", s.Key)
			case !errors.Is(err, prefs.ErrNotFound):
				return Manifest{}, fmt.Errorf("checking %s: %w", s.Key, err)
			}
		}
	}

	for _, s := range settings {
		if err := store.Set(ctx, s.Key, s.Value); err != nil {
			return Manifest{}, fmt.Errorf("restoring %s: %w", s.Key, err)
		}
	}
	return m, nil
}

func read(r io.Reader) (Manifest, []prefs.Setting, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return Manifest{}, nil, fmt.Errorf("decompressing archive: %w", err)
	}
	defer gr.Close()

	var (
		m             Manifest
		settings      []prefs.Setting
		foundManifest bool
		foundSettings bool
	)

	tr := tar.NewReader(gr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Manifest{}, nil, fmt.Errorf("reading archive entry: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		var dst any
		switch hdr.Name {
		case manifestEntry:
			dst, foundManifest = &m, true
		case settingsEntry:
			dst, foundSettings = &settings, true
		default:
			return Manifest{}, nil, fmt.Errorf("invalid backup: unexpected entry %q", hdr.Name)
		}
		if err := json.NewDecoder(io.LimitReader(tr, maxEntrySize)).Decode(dst); err != nil {
			return Manifest{}, nil, fmt.Errorf("decoding %s: %w", hdr.Name, err)
		}
	}

	if !foundManifest || !foundSettings {
		return Manifest{}, nil, errors.New("invalid backup: archive is missing its manifest or settings")
	}
	if m.Format > FormatVersion {
		return Manifest{}, nil, fmt.Errorf("invalid backup: format %d is newer than supported %d", m.Format, FormatVersion)
	}
	for _, s := range settings {
		if s.Key == "" {
			return Manifest{}, nil, errors.New("invalid backup: setting with empty key")
		}
	}
	return m, settings, nil
}
