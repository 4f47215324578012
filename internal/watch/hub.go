package watch

import (
	"context"
	"sync"

	"github.com/tuj-devs/officehours-service/internal/domain"
)

// Key identifies one watchable reservation query.
type Key string

// StudentKey is the key for a student's reservation list.
func StudentKey(studentID string) Key {
	return Key("student:" + studentID)
}

// ProfessorKey is the key for a professor's reservation list.
func ProfessorKey(professorID string) Key {
	return Key("professor:" + professorID)
}

// FetchFunc produces the full current state for a subscription. It is
// re-run on every wakeup; subscribers always receive complete
// snapshots, never deltas.
type FetchFunc func(ctx context.Context) ([]*domain.Reservation, error)

// Logger is the logging interface the hub needs.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Hub fans reservation-change wakeups out to live subscriptions.
// Wakeups come from the local booking path and, across instances,
// from the Postgres notification listener; both just name a key, and
// each subscription re-queries its own snapshot.
type Hub struct {
	mu     sync.Mutex
	subs   map[Key]map[*Subscription]struct{}
	closed bool
	logger Logger
}

// NewHub creates an empty hub.
func NewHub(logger Logger) *Hub {
	return &Hub{
		subs:   make(map[Key]map[*Subscription]struct{}),
		logger: logger,
	}
}

// Subscribe registers a new subscription for key. The first snapshot
// is fetched synchronously, so a successful Subscribe means the
// caller will observe at least the current state. Cancelling ctx or
// calling Close stops delivery.
func (h *Hub) Subscribe(ctx context.Context, key Key, fetch FetchFunc) (*Subscription, error) {
	initial, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		hub:   h,
		key:   key,
		fetch: fetch,
		wake:  make(chan struct{}, 1),
		out:   make(chan []*domain.Reservation, 1),
		done:  make(chan struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.out)
		return nil, context.Canceled
	}
	if h.subs[key] == nil {
		h.subs[key] = make(map[*Subscription]struct{})
	}
	h.subs[key][sub] = struct{}{}
	h.mu.Unlock()

	sub.deliver(initial)
	go sub.run(ctx)

	return sub, nil
}

// Wake signals every subscription on key to re-fetch and deliver a
// fresh snapshot. Non-blocking; pending wakeups coalesce.
func (h *Hub) Wake(key Key) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[key] {
		select {
		case sub.wake <- struct{}{}:
		default:
		}
	}
}

// Close shuts down all subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := make([]*Subscription, 0)
	for _, set := range h.subs {
		for sub := range set {
			subs = append(subs, sub)
		}
	}
	h.closed = true
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[sub.key]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.key)
		}
	}
}

// Subscription is a live, cancellable view over one reservation query.
type Subscription struct {
	hub   *Hub
	key   Key
	fetch FetchFunc
	wake  chan struct{}
	out   chan []*domain.Reservation
	done  chan struct{}
	once  sync.Once
}

// Snapshots returns the channel of full-state snapshots. The channel
// is closed when the subscription ends.
func (s *Subscription) Snapshots() <-chan []*domain.Reservation {
	return s.out
}

// Close stops delivery. Idempotent; no snapshots are sent after it
// returns the subscription to the hub.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
		close(s.done)
	})
}

func (s *Subscription) run(ctx context.Context) {
	defer close(s.out)

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			s.Close()
			return
		case <-s.wake:
			snap, err := s.fetch(ctx)
			if err != nil {
				// Same fail-safe-closed stance as the listing path:
				// better an empty list than a stale one.
				s.hub.logger.Warn("watch: fetch for key=%s failed, delivering empty snapshot: %v", s.key, err)
				snap = []*domain.Reservation{}
			}
			s.deliver(snap)
		}
	}
}

// deliver replaces any undelivered snapshot with the newest one so a
// slow consumer only ever sees current state.
func (s *Subscription) deliver(snap []*domain.Reservation) {
	for {
		select {
		case s.out <- snap:
			return
		default:
			select {
			case <-s.out:
			default:
			}
		}
	}
}
