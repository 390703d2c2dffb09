// Package transition orchestrates the circular reveal that accompanies a
// light/dark switch. The reveal is cosmetic: state is always committed before
// any animation is requested, and a renderer that cannot animate gets an
// instant switch.
package transition

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDuration is how long a reveal runs before the orchestrator returns to Idle.
const DefaultDuration = 500 * time.Millisecond

// ErrUnsupported is returned by an Animator whose renderer has no animated
// transition primitive. It is never surfaced to callers of Run.
var ErrUnsupported = errors.New("animated transition not supported")

// State is the orchestrator state.
type State string

const (
	StateIdle      State = "idle"
	StateAnimating State = "animating"
)

// Outcome describes what Run did after committing.
type Outcome string

const (
	// OutcomeInstant means no animation was requested.
	OutcomeInstant Outcome = "instant"
	// OutcomeAnimated means a reveal started from Idle.
	OutcomeAnimated Outcome = "animated"
	// OutcomeRestarted means a reveal replaced one still in flight.
	OutcomeRestarted Outcome = "restarted"
)

// Point is a position in CSS pixels relative to the viewport's top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a viewport size in CSS pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Trigger is the pointer position captured from the interaction that asked
// for the switch.
type Trigger struct {
	Origin   Point `json:"origin"`
	Viewport Size  `json:"viewport"`
}

// Reveal is one animation request handed to the Animator.
type Reveal struct {
	Seq      uint64        `json:"seq"`
	Origin   Point         `json:"origin"`
	Radius   float64       `json:"radius"`
	Duration time.Duration `json:"duration"`
}

// Animator renders reveals. Supported is the feature-detection hook.
type Animator interface {
	Supported() bool
	Reveal(ctx context.Context, r Reveal) error
}

// EndRadius returns the radius a circle centered on origin needs to cover
// the whole viewport: the distance to the farthest corner.
func EndRadius(origin Point, viewport Size) float64 {
	dx := math.Max(origin.X, viewport.Width-origin.X)
	dy := math.Max(origin.Y, viewport.Height-origin.Y)
	return math.Hypot(dx, dy)
}

// Option configures a Circular.
type Option func(*Circular)

// WithDuration overrides DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(c *Circular) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithObserver registers a callback invoked with every Run outcome.
func WithObserver(fn func(Outcome)) Option {
	return func(c *Circular) { c.observe = fn }
}

// Circular is the Idle/Animating orchestrator. It is safe for concurrent use.
type Circular struct {
	mu       sync.Mutex
	animator Animator
	duration time.Duration
	logger   *zap.Logger
	observe  func(Outcome)

	state   State
	seq     uint64
	current Reveal
	timer   *time.Timer
}

// NewCircular creates an orchestrator. A nil animator means every Run is instant.
func NewCircular(animator Animator, logger *zap.Logger, opts ...Option) *Circular {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Circular{
		animator: animator,
		duration: DefaultDuration,
		logger:   logger,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run calls commit synchronously, then starts a reveal when t is non-nil and
// the animator can render one. A reveal started while another is in flight
// replaces it: new origin, new sequence number, restarted timer.
func (c *Circular) Run(ctx context.Context, t *Trigger, commit func()) Outcome {
	commit()

	if t == nil || c.animator == nil {
		return c.report(OutcomeInstant)
	}
	if !c.animator.Supported() {
		c.interrupt()
		return c.report(OutcomeInstant)
	}

	c.mu.Lock()
	outcome := OutcomeAnimated
	if c.state == StateAnimating {
		outcome = OutcomeRestarted
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	r := Reveal{
		Seq:      seq,
		Origin:   t.Origin,
		Radius:   EndRadius(t.Origin, t.Viewport),
		Duration: c.duration,
	}
	c.state = StateAnimating
	c.current = r
	c.timer = time.AfterFunc(c.duration, func() { c.finish(seq) })
	c.mu.Unlock()

	if err := c.animator.Reveal(ctx, r); err != nil {
		if !errors.Is(err, ErrUnsupported) {
			c.logger.Warn("reveal failed, switched instantly", zap.Uint64("seq", seq), zap.Error(err))
		} else {
			c.logger.Debug("reveal unsupported, switched instantly", zap.Uint64("seq", seq))
		}
		c.finish(seq)
		return c.report(OutcomeInstant)
	}
	return c.report(outcome)
}

// State returns the current orchestrator state.
func (c *Circular) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the in-flight reveal, if any.
func (c *Circular) Current() (Reveal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAnimating {
		return Reveal{}, false
	}
	return c.current, true
}

// Stop cancels any pending completion timer and returns to Idle.
func (c *Circular) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.state = StateIdle
	c.current = Reveal{}
}

// interrupt drops a reveal still in flight. The sequence advances so its
// pending completion is ignored.
func (c *Circular) interrupt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAnimating {
		return
	}
	c.timer.Stop()
	c.seq++
	c.state = StateIdle
	c.current = Reveal{}
}

// finish returns to Idle unless a newer reveal has started since seq.
func (c *Circular) finish(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq != seq {
		return
	}
	c.state = StateIdle
	c.current = Reveal{}
}

func (c *Circular) report(o Outcome) Outcome {
	if c.observe != nil {
		c.observe(o)
	}
	return o
}
