package layout

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/HerbHall/authdeck/internal/event"
	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// TopicChanged is published with a Snapshot payload after every commit.
const TopicChanged = "layout.changed"

// Preference keys.
const (
	KeyConfig      = "layout.config"
	KeySidebarOpen = "layout.sidebar_open"
)

// Keys lists every preference the Store owns.
func Keys() []string { return []string{KeyConfig, KeySidebarOpen} }

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authdeck_layout_updates_total",
			Help: "Layout changes applied, by operation.",
		},
		[]string{"operation"},
	)
	autoCollapsesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "authdeck_layout_auto_collapses_total",
			Help: "Sidebars collapsed because icon mode was selected while expanded.",
		},
	)
	persistFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "authdeck_layout_persist_failures_total",
			Help: "Layout preference reads or writes that failed.",
		},
	)
)

func init() {
	prometheus.MustRegister(updatesTotal, autoCollapsesTotal, persistFailuresTotal)
}

// Bus carries committed snapshots to observers.
type Bus interface {
	Publish(ctx context.Context, e event.Event)
	Subscribe(topic string, handler event.Handler) (unsubscribe func())
}

// Option configures a Store.
type Option func(*Store)

// WithProfile names the profile the Store belongs to.
func WithProfile(profile string) Option { return func(s *Store) { s.profile = profile } }

// WithPrefs enables persistence.
func WithPrefs(p prefs.Store) Option { return func(s *Store) { s.prefs = p } }

// WithDocument sets the element layout attributes are written to.
func WithDocument(d Document) Option { return func(s *Store) { s.doc = d } }

// WithBus shares an event bus.
func WithBus(b Bus) Option { return func(s *Store) { s.bus = b } }

// Store owns the layout configuration and sidebar expansion for one profile.
type Store struct {
	mu      sync.Mutex
	profile string
	prefs   prefs.Store
	doc     Document
	bus     Bus
	out     *event.Sequencer
	logger  *zap.Logger

	config Config
	open   bool
}

// NewStore creates a Store with the default configuration, expanded.
func NewStore(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		profile: "default",
		logger:  logger,
		config:  DefaultConfig(),
		open:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bus == nil {
		s.bus = event.NewBus(logger)
	}
	s.out = event.NewSequencer(s.bus)
	if s.doc == nil {
		s.doc = nopDocument{}
	}
	return s
}

// UpdateConfig merges p into the configuration, applies and persists it.
// Selecting icon mode while the sidebar is expanded also collapses it.
func (s *Store) UpdateConfig(ctx context.Context, p Patch) (Config, error) {
	s.mu.Lock()
	next := s.config.Merge(p)
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return Config{}, err
	}
	open := s.open
	if p.Collapsible != nil && *p.Collapsible == CollapsibleIcon && open {
		open = false
		autoCollapsesTotal.Inc()
	}
	s.commitLocked(ctx, next, open)
	s.mu.Unlock()

	updatesTotal.WithLabelValues("update_config").Inc()
	s.Notify(ctx)
	return next, nil
}

// ToggleSidebar flips the expansion state and returns the new value.
func (s *Store) ToggleSidebar(ctx context.Context) bool {
	s.mu.Lock()
	snap := s.commitLocked(ctx, s.config, !s.open)
	s.mu.Unlock()

	updatesTotal.WithLabelValues("toggle_sidebar").Inc()
	s.Notify(ctx)
	return snap.Open
}

// SetOpen sets the expansion state.
func (s *Store) SetOpen(ctx context.Context, open bool) {
	s.mu.Lock()
	s.commitLocked(ctx, s.config, open)
	s.mu.Unlock()

	updatesTotal.WithLabelValues("set_open").Inc()
	s.Notify(ctx)
}

// Reset restores the defaults and deletes the persisted keys.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.config, s.open = DefaultConfig(), true
	applyTo(s.doc, s.config, s.open)
	if s.prefs != nil {
		if err := s.prefs.Delete(ctx, Keys()...); err != nil {
			s.persistFailed("delete keys", err)
		}
	}
	s.queueLocked()
	s.mu.Unlock()

	updatesTotal.WithLabelValues("reset").Inc()
	s.Notify(ctx)
}

// Restore loads the persisted layout. Missing or invalid values fall back to defaults.
func (s *Store) Restore(ctx context.Context) {
	s.Load(ctx)
	s.Notify(ctx)
}

// Load is Restore with the change notification held back until the next
// Notify or committed change.
func (s *Store) Load(ctx context.Context) Snapshot {
	cfg, open := DefaultConfig(), true
	if raw, ok := s.read(ctx, KeyConfig); ok {
		var stored Config
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			s.logger.Warn("ignoring persisted layout", zap.Error(err))
		} else if err := stored.Validate(); err != nil {
			s.logger.Warn("ignoring persisted layout", zap.Error(err))
		} else {
			cfg = stored
		}
	}
	if raw, ok := s.read(ctx, KeySidebarOpen); ok {
		if b, err := strconv.ParseBool(raw); err != nil {
			s.logger.Warn("ignoring persisted sidebar state", zap.String("value", raw))
		} else {
			open = b
		}
	}

	s.mu.Lock()
	s.config, s.open = cfg, open
	applyTo(s.doc, cfg, open)
	snap := s.queueLocked()
	s.mu.Unlock()
	return snap
}

// Config returns the current configuration.
func (s *Store) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Open reports whether the sidebar is expanded.
func (s *Store) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for every committed change of this Store.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.bus.Subscribe(TopicChanged, func(_ context.Context, e event.Event) {
		if e.Source != s.profile {
			return
		}
		if snap, ok := e.Payload.(Snapshot); ok {
			fn(snap)
		}
	})
}

func (s *Store) commitLocked(ctx context.Context, c Config, open bool) Snapshot {
	s.config, s.open = c, open
	applyTo(s.doc, c, open)
	s.persistLocked(ctx)
	return s.queueLocked()
}

// Notify delivers pending change notifications in commit order.
func (s *Store) Notify(ctx context.Context) {
	s.out.Flush(ctx)
}

// queueLocked queues the current snapshot for observers. Callers hold s.mu.
func (s *Store) queueLocked() Snapshot {
	snap := s.snapshotLocked()
	s.out.Queue(event.Event{Topic: TopicChanged, Source: s.profile, Payload: snap})
	return snap
}

func (s *Store) persistLocked(ctx context.Context) {
	if s.prefs == nil {
		return
	}
	b, err := json.Marshal(s.config)
	if err != nil {
		s.persistFailed("encode config", err)
		return
	}
	if err := s.prefs.Set(ctx, KeyConfig, string(b)); err != nil {
		s.persistFailed("write "+KeyConfig, err)
	}
	if err := s.prefs.Set(ctx, KeySidebarOpen, strconv.FormatBool(s.open)); err != nil {
		s.persistFailed("write "+KeySidebarOpen, err)
	}
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	if s.prefs == nil {
		return "", false
	}
	v, err := s.prefs.Get(ctx, key)
	if errors.Is(err, prefs.ErrNotFound) {
		return "", false
	}
	if err != nil {
		s.persistFailed("read "+key, err)
		return "", false
	}
	return v, true
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Profile: s.profile, Config: s.config, Open: s.open, State: expansion(s.open)}
}

func (s *Store) persistFailed(op string, err error) {
	persistFailuresTotal.Inc()
	s.logger.Warn("layout preference "+op+" failed", zap.String("profile", s.profile), zap.Error(err))
}
