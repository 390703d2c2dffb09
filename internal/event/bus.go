// Package event provides the in-memory bus that appearance stores publish
// their committed state on.
package event

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is a committed state change.
type Event struct {
	Topic     string
	Source    string // profile that changed
	Timestamp time.Time
	Payload   any
}

// Handler receives events in the publisher's goroutine.
type Handler func(ctx context.Context, e Event)

// Bus is an in-memory topic bus. Handler panics are recovered and logged.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]handlerEntry
	nextID   uint64
	logger   *zap.Logger
}

type handlerEntry struct {
	id      uint64
	handler Handler
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		handlers: make(map[string][]handlerEntry),
		logger:   logger,
	}
}

// Publish dispatches e synchronously to the topic's subscribers in
// subscription order. A zero Timestamp is set to now.
func (b *Bus) Publish(ctx context.Context, e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	for _, h := range b.snapshot(e.Topic) {
		b.safeCall(ctx, h.handler, e)
	}
}

// Subscribe registers a handler for one topic. Returns an unsubscribe function.
func (b *Bus) Subscribe(topic string, handler Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[topic] = append(b.handlers[topic], handlerEntry{id: id, handler: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.handlers[topic] = remove(b.handlers[topic], id)
		if len(b.handlers[topic]) == 0 {
			delete(b.handlers, topic)
		}
	}
}

func (b *Bus) snapshot(topic string) []handlerEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]handlerEntry(nil), b.handlers[topic]...)
}

func remove(entries []handlerEntry, id uint64) []handlerEntry {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}

func (b *Bus) safeCall(ctx context.Context, handler Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("topic", e.Topic),
				zap.String("source", e.Source),
				zap.Any("panic", r),
			)
		}
	}()
	handler(ctx, e)
}
