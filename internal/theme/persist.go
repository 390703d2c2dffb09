package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"go.uber.org/zap"
)

// Preference keys. The Manager's store is expected to be namespaced per profile.
const (
	KeySource    = "theme.source"
	KeyVariant   = "theme.variant"
	KeyOverrides = "theme.overrides"
	KeyRadius    = "theme.radius"
)

// Keys lists every preference the Manager owns.
func Keys() []string { return []string{KeySource, KeyVariant, KeyOverrides, KeyRadius} }

// storedSource is the persisted form of a Source. Catalog presets are stored
// by id and re-read from the registry; the others carry their maps.
type storedSource struct {
	Kind        Kind              `json:"kind"`
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Light       map[string]string `json:"light,omitempty"`
	Dark        map[string]string `json:"dark,omitempty"`
}

func encodeSource(s Source) (string, error) {
	st := storedSource{Kind: s.Kind, ID: s.ID, Name: s.Name, Description: s.Description}
	if s.Kind == KindAlternate || s.Kind == KindImported {
		st.Light, st.Dark = s.Light, s.Dark
	}
	b, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSource(raw string) (Source, error) {
	var st storedSource
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return Source{}, fmt.Errorf("decode source: %w", err)
	}
	var src Source
	switch st.Kind {
	case KindNone, "":
		return NoSource(), nil
	case KindCatalog:
		p, ok := catalog.Shadcn().Lookup(st.ID)
		if !ok {
			return Source{}, fmt.Errorf("%w: %q", ErrUnknownPreset, st.ID)
		}
		return CatalogSource(p), nil
	case KindAlternate, KindImported:
		src = Source{
			Kind:        st.Kind,
			ID:          st.ID,
			Name:        st.Name,
			Description: st.Description,
			Light:       st.Light,
			Dark:        st.Dark,
		}
	default:
		src = Source{Kind: st.Kind}
	}
	if err := src.Validate(); err != nil {
		return Source{}, err
	}
	return src, nil
}

// persist writes every key. Failures are logged and counted, never returned.
func (m *Manager) persist(ctx context.Context, s state) {
	if m.store == nil {
		return
	}
	src, err := encodeSource(s.source)
	if err != nil {
		m.persistFailed("encode source", err)
		return
	}
	ov, err := json.Marshal(s.overrides)
	if err != nil {
		m.persistFailed("encode overrides", err)
		return
	}
	writes := []struct{ key, value string }{
		{KeySource, src},
		{KeyVariant, string(s.variant)},
		{KeyOverrides, string(ov)},
		{KeyRadius, string(s.radius)},
	}
	for _, w := range writes {
		if err := m.store.Set(ctx, w.key, w.value); err != nil {
			m.persistFailed("write "+w.key, err)
		}
	}
}

func (m *Manager) forget(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(ctx, Keys()...); err != nil {
		m.persistFailed("delete keys", err)
	}
}

// load reads the persisted state. Every key falls back to its default on its
// own, so one corrupt value does not discard the others.
func (m *Manager) load(ctx context.Context) state {
	s := defaultState()
	if m.store == nil {
		return s
	}

	if raw, ok := m.read(ctx, KeySource); ok {
		if src, err := decodeSource(raw); err != nil {
			m.logger.Warn("ignoring persisted theme source", zap.Error(err))
		} else {
			s.source = src
		}
	}
	if raw, ok := m.read(ctx, KeyVariant); ok {
		if v, err := ParseVariant(raw); err != nil {
			m.logger.Warn("ignoring persisted variant", zap.Error(err))
		} else {
			s.variant = v
		}
	}
	if raw, ok := m.read(ctx, KeyOverrides); ok {
		var ov map[string]string
		if err := json.Unmarshal([]byte(raw), &ov); err != nil {
			m.logger.Warn("ignoring persisted color overrides", zap.Error(err))
		}
		for name, value := range ov {
			if err := ValidateOverride(name, value); err != nil {
				m.logger.Warn("dropping persisted color override", zap.String("variable", name), zap.Error(err))
				continue
			}
			s.overrides = s.overrides.With(name, value)
		}
	}
	if raw, ok := m.read(ctx, KeyRadius); ok {
		if r := catalog.Radius(raw); catalog.ValidRadius(r) {
			s.radius = r
		} else {
			m.logger.Warn("ignoring persisted radius", zap.String("radius", raw))
		}
	}
	return s
}

func (m *Manager) read(ctx context.Context, key string) (string, bool) {
	v, err := m.store.Get(ctx, key)
	if errors.Is(err, prefs.ErrNotFound) {
		return "", false
	}
	if err != nil {
		m.persistFailed("read "+key, err)
		return "", false
	}
	return v, true
}

func (m *Manager) persistFailed(op string, err error) {
	persistFailuresTotal.Inc()
	m.logger.Warn("theme preference "+op+" failed", zap.String("profile", m.profile), zap.Error(err))
}
