// Package appearance wires the theme manager, layout store and live document
// of each profile into a session, and exposes them over HTTP.
package appearance

import (
	"context"
	"sync"
	"time"

	"github.com/HerbHall/authdeck/internal/document"
	"github.com/HerbHall/authdeck/internal/event"
	"github.com/HerbHall/authdeck/internal/layout"
	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/theme"
	"github.com/HerbHall/authdeck/internal/theme/transition"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultProfile is used when authentication is disabled.
const DefaultProfile = "default"

var activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
	Name: "authdeck_appearance_sessions",
	Help: "Profiles with an appearance session loaded in memory.",
})

func init() {
	prometheus.MustRegister(activeSessions)
}

// KeyPrefix returns the preference namespace of a profile.
func KeyPrefix(profile string) string { return "appearance:" + profile + ":" }

// Session is the appearance state of one profile.
type Session struct {
	Profile  string
	Theme    *theme.Manager
	Layout   *layout.Store
	Document *document.Root
}

// Snapshot is everything a client needs to render a profile's appearance.
type Snapshot struct {
	Theme    theme.Snapshot  `json:"theme"`
	Layout   layout.Snapshot `json:"layout"`
	Document document.State  `json:"document"`
}

// Snapshot returns the session's combined state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Theme:    s.Theme.Snapshot(),
		Layout:   s.Layout.Snapshot(),
		Document: s.Document.State(),
	}
}

// Reset restores both stores to their defaults.
func (s *Session) Reset(ctx context.Context) error {
	s.Layout.Reset(ctx)
	return s.Theme.Reset(ctx)
}

// AnimatorFactory returns the reveal renderer for a profile. It may return nil.
type AnimatorFactory func(profile string) transition.Animator

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithAnimators sets the reveal renderer factory.
func WithAnimators(f AnimatorFactory) RegistryOption {
	return func(r *Registry) { r.animators = f }
}

// WithTransitionDuration overrides transition.DefaultDuration.
func WithTransitionDuration(d time.Duration) RegistryOption {
	return func(r *Registry) { r.duration = d }
}

// Registry lazily creates one Session per profile and restores it from the
// preference store on first use.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	prefs     prefs.Store
	bus       *event.Bus
	animators AnimatorFactory
	duration  time.Duration
	logger    *zap.Logger
}

// NewRegistry creates a Registry. Sessions publish on bus.
func NewRegistry(store prefs.Store, bus *event.Bus, logger *zap.Logger, opts ...RegistryOption) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bus == nil {
		bus = event.NewBus(logger)
	}
	r := &Registry{
		sessions: make(map[string]*entry),
		prefs:    store,
		bus:      bus,
		duration: transition.DefaultDuration,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bus returns the bus sessions publish on.
func (r *Registry) Bus() *event.Bus { return r.bus }

// entry is a registered session. ready is closed once its state has been
// restored from the preference store.
type entry struct {
	session *Session
	ready   chan struct{}
}

// Session returns the profile's session, creating and restoring it if needed.
// Only the first caller for a profile reads the preference store; later
// callers for that profile wait for it, other profiles do not. The restored
// state is announced once the session is ready, so subscribers may call back
// into the registry.
func (r *Registry) Session(ctx context.Context, profile string) *Session {
	if profile == "" {
		profile = DefaultProfile
	}
	r.mu.Lock()
	e, ok := r.sessions[profile]
	if ok {
		r.mu.Unlock()
		<-e.ready
		return e.session
	}
	e = &entry{session: r.newSession(profile), ready: make(chan struct{})}
	r.sessions[profile] = e
	activeSessions.Set(float64(len(r.sessions)))
	r.mu.Unlock()

	s := e.session
	s.Theme.Load(ctx)
	s.Layout.Load(ctx)
	close(e.ready)

	r.logger.Debug("appearance session loaded", zap.String("profile", profile))
	s.Theme.Notify(ctx)
	s.Layout.Notify(ctx)
	return s
}

func (r *Registry) newSession(profile string) *Session {
	doc := document.NewRoot()
	logger := r.logger.With(zap.String("profile", profile))

	var store prefs.Store
	if r.prefs != nil {
		store = prefs.Namespace(r.prefs, KeyPrefix(profile))
	}

	var animator transition.Animator
	if r.animators != nil {
		animator = r.animators(profile)
	}
	circ := transition.NewCircular(animator, logger.Named("transition"), transition.WithDuration(r.duration))

	return &Session{
		Profile: profile,
		Theme: theme.NewManager(logger.Named("theme"),
			theme.WithProfile(profile),
			theme.WithStore(store),
			theme.WithDocument(doc),
			theme.WithBus(r.bus),
			theme.WithTransition(circ),
		),
		Layout: layout.NewStore(logger.Named("layout"),
			layout.WithProfile(profile),
			layout.WithPrefs(store),
			layout.WithDocument(doc),
			layout.WithBus(r.bus),
		),
		Document: doc,
	}
}
