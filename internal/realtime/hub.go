// Package realtime fans task-change events out to connected clients.
//
// Delivery is at-most-once and best-effort: events are published only after
// the mutating command has been acknowledged by the store, and a slow or gone
// subscriber never blocks or fails the request that triggered the broadcast.
package realtime

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// subscriberBuffer bounds how far a subscriber may lag before events are
// dropped for it.
const subscriberBuffer = 16

// Subscriber is one connected client's membership in the broadcast group.
type Subscriber struct {
	id uuid.UUID
	ch chan TaskEvent
}

// Events yields broadcasts until the subscriber is unsubscribed.
func (s *Subscriber) Events() <-chan TaskEvent { return s.ch }

// Hub is a thread-safe registry of live subscribers with unconditional
// fan-out. There is no per-user targeting and no topic partitioning.
type Hub struct {
	log *slog.Logger

	mu   sync.RWMutex
	subs map[uuid.UUID]*Subscriber
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:  log,
		subs: make(map[uuid.UUID]*Subscriber),
	}
}

// Subscribe registers a new connection. Membership in the broadcast group is
// automatic; the caller must Unsubscribe when the connection ends.
func (h *Hub) Subscribe() *Subscriber {
	s := &Subscriber{
		id: uuid.New(),
		ch: make(chan TaskEvent, subscriberBuffer),
	}
	h.mu.Lock()
	h.subs[s.id] = s
	h.mu.Unlock()
	return s
}

// Unsubscribe removes the subscriber and closes its event channel. It is safe
// to call for an already-removed subscriber.
func (h *Hub) Unsubscribe(s *Subscriber) {
	if s == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s.id]; !ok {
		return
	}
	delete(h.subs, s.id)
	close(s.ch)
}

// Publish delivers ev to every currently connected subscriber. Sends are
// non-blocking: a subscriber whose buffer is full loses the event.
//
// Sends happen under the read lock so Unsubscribe (which closes the channel
// under the write lock) cannot interleave with them.
func (h *Hub) Publish(ev TaskEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.subs {
		select {
		case s.ch <- ev:
		default:
			h.log.Debug("dropping event for slow subscriber",
				slog.String("kind", string(ev.Kind)),
				slog.String("subscriber", s.id.String()))
		}
	}
}

// Len reports the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
