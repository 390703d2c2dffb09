package theme

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"sync"

	"github.com/HerbHall/authdeck/internal/event"
	"github.com/HerbHall/authdeck/internal/prefs"
	"github.com/HerbHall/authdeck/internal/theme/catalog"
	"github.com/HerbHall/authdeck/internal/theme/importer"
	"github.com/HerbHall/authdeck/internal/theme/transition"
	"go.uber.org/zap"
)

// TopicChanged is published with a Snapshot payload after every commit.
const TopicChanged = "theme.changed"

// VariableGroup is the document group the effective theme is written to.
const VariableGroup = "theme"

// Document is the live root element the effective theme is applied to.
type Document interface {
	ReplaceVariables(group string, vars map[string]string)
	SetVariable(name, value string)
	SetProperty(name, value string)
	ToggleClass(name string, on bool)
}

// Bus carries committed snapshots to observers.
type Bus interface {
	Publish(ctx context.Context, e event.Event)
	Subscribe(topic string, handler event.Handler) (unsubscribe func())
}

// Snapshot is a read-only view of the Manager's state.
type Snapshot struct {
	Profile    string            `json:"profile"`
	Source     SourceInfo        `json:"source"`
	Variant    Variant           `json:"variant"`
	Overrides  map[string]string `json:"overrides"`
	Radius     catalog.Radius    `json:"radius"`
	Effective  map[string]string `json:"effective"`
	Transition transition.State  `json:"transition"`
}

type state struct {
	source    Source
	variant   Variant
	overrides Overrides
	radius    catalog.Radius
}

func defaultState() state {
	return state{
		source:  NoSource(),
		variant: DefaultVariant,
		radius:  catalog.DefaultRadius,
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithProfile names the profile the Manager belongs to. Events carry it as Source.
func WithProfile(profile string) Option {
	return func(m *Manager) { m.profile = profile }
}

// WithStore enables persistence.
func WithStore(s prefs.Store) Option {
	return func(m *Manager) { m.store = s }
}

// WithDocument sets the element the effective theme is applied to.
func WithDocument(d Document) Option {
	return func(m *Manager) { m.doc = d }
}

// WithBus shares an event bus with other components.
func WithBus(b Bus) Option {
	return func(m *Manager) { m.bus = b }
}

// WithTransition decorates SetVariant with an animated reveal.
func WithTransition(c *transition.Circular) Option {
	return func(m *Manager) { m.transition = c }
}

// WithRand fixes the random source used by ApplyRandomPreset.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// Manager owns theme state for one profile. Operations are serialized and
// synchronous: the document and the store are updated before they return.
type Manager struct {
	mu         sync.Mutex
	profile    string
	store      prefs.Store
	doc        Document
	bus        Bus
	out        *event.Sequencer
	transition *transition.Circular
	rng        *rand.Rand
	logger     *zap.Logger

	state state
}

// NewManager creates a Manager in the factory default state. Nothing is
// applied until Restore or the first operation.
func NewManager(logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		profile: "default",
		logger:  logger,
		state:   defaultState(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.bus == nil {
		m.bus = event.NewBus(logger)
	}
	m.out = event.NewSequencer(m.bus)
	if m.doc == nil {
		m.doc = nopDocument{}
	}
	return m
}

// ApplyPreset selects a preset from the primary catalog by id.
func (m *Manager) ApplyPreset(ctx context.Context, id string, v Variant) error {
	const op = "apply_preset"
	if err := v.Validate(); err != nil {
		return m.reject(op, err)
	}
	p, ok := catalog.Shadcn().Lookup(id)
	if !ok {
		return m.reject(op, fmt.Errorf("%w: %q", ErrUnknownPreset, id))
	}
	return m.update(ctx, op, func(s *state) {
		s.source = CatalogSource(p)
		s.variant = v
	})
}

// ApplyAlternatePreset selects a preset from the alternate family. The
// preset value is taken as given; it need not be registered.
func (m *Manager) ApplyAlternatePreset(ctx context.Context, p catalog.Preset, v Variant) error {
	const op = "apply_alternate_preset"
	if err := v.Validate(); err != nil {
		return m.reject(op, err)
	}
	if p.ID == "" {
		return m.reject(op, fmt.Errorf("%w: preset id is empty", ErrUnknownPreset))
	}
	src := AlternateSource(p)
	if err := src.Validate(); err != nil {
		return m.reject(op, fmt.Errorf("preset %q: %w", p.ID, err))
	}
	return m.update(ctx, op, func(s *state) {
		s.source = src
		s.variant = v
	})
}

// ApplyImportedTheme selects an imported theme after re-validating it.
// Color overrides are kept.
func (m *Manager) ApplyImportedTheme(ctx context.Context, t importer.Theme, v Variant) error {
	const op = "apply_imported_theme"
	if err := v.Validate(); err != nil {
		return m.reject(op, err)
	}
	if err := importer.Validate(t); err != nil {
		return m.reject(op, err)
	}
	src := ImportedSource(t)
	return m.update(ctx, op, func(s *state) {
		s.source = src
		s.variant = v
	})
}

// ApplyRandomPreset picks a preset from the named family at random and applies it.
func (m *Manager) ApplyRandomPreset(ctx context.Context, family string, v Variant) (catalog.Preset, error) {
	const op = "apply_random_preset"
	f, ok := catalog.ByName(family)
	if !ok {
		return catalog.Preset{}, m.reject(op, fmt.Errorf("%w: family %q", ErrUnknownPreset, family))
	}
	m.mu.Lock()
	p, ok := f.Random(m.rng)
	m.mu.Unlock()
	if !ok {
		return catalog.Preset{}, m.reject(op, fmt.Errorf("%w: family %q is empty", ErrUnknownPreset, family))
	}
	if family == catalog.FamilyShadcn {
		return p, m.ApplyPreset(ctx, p.ID, v)
	}
	return p, m.ApplyAlternatePreset(ctx, p, v)
}

// SetColorOverride sets one brand variable. An empty value clears it.
// The source and variant are unchanged.
func (m *Manager) SetColorOverride(ctx context.Context, name, value string) error {
	const op = "set_color_override"
	if err := ValidateOverride(name, value); err != nil {
		return m.reject(op, err)
	}
	return m.update(ctx, op, func(s *state) {
		s.overrides = s.overrides.With(name, value)
	})
}

// ClearColorOverrides removes every override.
func (m *Manager) ClearColorOverrides(ctx context.Context) error {
	return m.update(ctx, "clear_color_overrides", func(s *state) {
		s.overrides = nil
	})
}

// SetRadius selects one of catalog.RadiusOptions.
func (m *Manager) SetRadius(ctx context.Context, r catalog.Radius) error {
	const op = "set_radius"
	if !catalog.ValidRadius(r) {
		return m.reject(op, fmt.Errorf("%w: %q", ErrInvalidRadius, string(r)))
	}
	return m.update(ctx, op, func(s *state) {
		s.radius = r
	})
}

// SetVariant switches light/dark, keeping the current source and overrides.
// A non-nil trigger (the pointer position of the interaction) requests the
// circular reveal; the state is committed either way before SetVariant returns.
func (m *Manager) SetVariant(ctx context.Context, v Variant, trigger *transition.Trigger) error {
	const op = "set_variant"
	if err := v.Validate(); err != nil {
		return m.reject(op, err)
	}
	return m.apply(ctx, op, func(s *state) { s.variant = v }, m.animated(ctx, trigger))
}

// ToggleVariant switches to the opposite variant and returns it.
func (m *Manager) ToggleVariant(ctx context.Context, trigger *transition.Trigger) (Variant, error) {
	var next Variant
	err := m.apply(ctx, "toggle_variant", func(s *state) {
		s.variant = s.variant.Toggle()
		next = s.variant
	}, m.animated(ctx, trigger))
	return next, err
}

// Reset restores the factory default and deletes the persisted keys.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	m.commit(defaultState())
	m.forget(ctx)
	m.queueLocked()
	m.mu.Unlock()

	appliesTotal.WithLabelValues("reset").Inc()
	m.Notify(ctx)
	return nil
}

// Restore loads the persisted state and applies it without animation.
// Missing or corrupt values fall back to their defaults.
func (m *Manager) Restore(ctx context.Context) {
	m.Load(ctx)
	m.Notify(ctx)
}

// Load is Restore with the change notification held back until the next
// Notify or committed change.
func (m *Manager) Load(ctx context.Context) Snapshot {
	next := m.load(ctx)

	m.mu.Lock()
	m.commit(next)
	snap := m.queueLocked()
	m.mu.Unlock()

	m.logger.Debug("theme restored",
		zap.String("profile", m.profile),
		zap.String("source", string(snap.Source.Kind)),
		zap.String("variant", string(snap.Variant)),
	)
	return snap
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Effective returns the effective theme for the current state.
func (m *Manager) Effective() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Resolve(m.state.source, m.state.variant, m.state.overrides)
}

// Source returns the active source including its variable maps.
func (m *Manager) Source() Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	src := m.state.source
	src.Light = maps.Clone(src.Light)
	src.Dark = maps.Clone(src.Dark)
	return src
}

// Subscribe registers fn for every committed change of this Manager.
func (m *Manager) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return m.bus.Subscribe(TopicChanged, func(_ context.Context, e event.Event) {
		if e.Source != m.profile {
			return
		}
		if snap, ok := e.Payload.(Snapshot); ok {
			fn(snap)
		}
	})
}

// runner executes a commit. The default commits directly.
type runner func(commit func())

func direct(commit func()) { commit() }

func (m *Manager) animated(ctx context.Context, trigger *transition.Trigger) runner {
	if m.transition == nil {
		return direct
	}
	return func(commit func()) {
		outcome := m.transition.Run(ctx, trigger, commit)
		transitionsTotal.WithLabelValues(string(outcome)).Inc()
	}
}

func (m *Manager) update(ctx context.Context, op string, mutate func(*state)) error {
	return m.apply(ctx, op, mutate, direct)
}

// apply mutates a copy of the state, commits it through run, persists it and
// notifies observers once the lock is released.
func (m *Manager) apply(ctx context.Context, op string, mutate func(*state), run runner) error {
	m.mu.Lock()
	next := m.state
	next.overrides = maps.Clone(m.state.overrides)
	mutate(&next)
	run(func() { m.commit(next) })
	m.persist(ctx, next)
	m.queueLocked()
	m.mu.Unlock()

	appliesTotal.WithLabelValues(op).Inc()
	m.Notify(ctx)
	return nil
}

// Notify delivers pending change notifications in commit order. Operations
// call it themselves; it is exported for callers of Load.
func (m *Manager) Notify(ctx context.Context) {
	m.out.Flush(ctx)
}

// commit replaces the state and writes it to the document. The variable
// group is swapped whole so keys from a previous source cannot linger.
// Callers hold m.mu.
func (m *Manager) commit(next state) {
	m.state = next
	m.doc.ReplaceVariables(VariableGroup, Resolve(next.source, next.variant, next.overrides))
	m.doc.ToggleClass("dark", next.variant == VariantDark)
	m.doc.SetProperty("color-scheme", string(next.variant))
	m.doc.SetVariable("--radius", string(next.radius))
}

func (m *Manager) snapshotLocked() Snapshot {
	snap := Snapshot{
		Profile:    m.profile,
		Source:     m.state.source.Info(),
		Variant:    m.state.variant,
		Overrides:  maps.Clone(map[string]string(m.state.overrides)),
		Radius:     m.state.radius,
		Effective:  Resolve(m.state.source, m.state.variant, m.state.overrides),
		Transition: transition.StateIdle,
	}
	if snap.Overrides == nil {
		snap.Overrides = map[string]string{}
	}
	if m.transition != nil {
		snap.Transition = m.transition.State()
	}
	return snap
}

// queueLocked queues the current snapshot for observers. Queuing under m.mu
// keeps notification order equal to commit order.
func (m *Manager) queueLocked() Snapshot {
	snap := m.snapshotLocked()
	m.out.Queue(event.Event{Topic: TopicChanged, Source: m.profile, Payload: snap})
	return snap
}

func (m *Manager) reject(op string, err error) error {
	rejectionsTotal.WithLabelValues(op).Inc()
	m.logger.Debug("theme operation rejected", zap.String("operation", op), zap.String("profile", m.profile), zap.Error(err))
	return err
}

type nopDocument struct{}

func (nopDocument) ReplaceVariables(string, map[string]string) {}
func (nopDocument) SetVariable(string, string)                 {}
func (nopDocument) SetProperty(string, string)                 {}
func (nopDocument) ToggleClass(string, bool)                   {}
