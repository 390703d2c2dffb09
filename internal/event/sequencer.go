package event

import (
	"context"
	"sync"
	"time"
)

// Publisher is the part of Bus a Sequencer delivers to.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Sequencer delivers events in the order they were queued. A store queues
// while it still holds the lock that orders its commits and flushes after
// releasing it, so observers see changes in commit order without that lock
// being held during delivery.
//
// One goroutine delivers at a time. A Flush that finds delivery in progress
// returns at once and the running delivery picks its events up, so a handler
// may cause further changes without deadlocking.
type Sequencer struct {
	pub Publisher

	mu         sync.Mutex
	queue      []Event
	delivering bool
}

// NewSequencer creates a Sequencer that delivers to pub.
func NewSequencer(pub Publisher) *Sequencer {
	return &Sequencer{pub: pub}
}

// Queue appends e. A zero Timestamp is set to now.
func (s *Sequencer) Queue(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	s.mu.Lock()
	s.queue = append(s.queue, e)
	s.mu.Unlock()
}

// Flush delivers queued events until the queue is empty, unless another
// goroutine is already delivering.
func (s *Sequencer) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.delivering = false
			s.mu.Unlock()
			panic(r)
		}
	}()
	for {
		e, ok := s.next()
		if !ok {
			return
		}
		s.pub.Publish(ctx, e)
	}
}

// next pops the oldest event. On an empty queue it ends delivery in the same
// critical section, so an event queued right after is never stranded.
func (s *Sequencer) next() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		s.delivering = false
		return Event{}, false
	}
	e := s.queue[0]
	s.queue[0] = Event{}
	s.queue = s.queue[1:]
	return e, true
}
