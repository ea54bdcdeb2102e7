package event

import "sync"

// Hub fans host signals out to subscriber queues
// Hosts publish from their own goroutines; each subscriber drains its queue on its frame
type Hub struct {
	mu   sync.RWMutex
	subs map[*Queue]struct{}

	// last holds the most recent signal of each type, replayed to new subscribers
	last  [len(typeNames)]Event
	known [len(typeNames)]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Queue]struct{})}
}

// Subscribe registers a new queue primed with the latest known state
// The returned cancel detaches the queue and is safe to call more than once
func (h *Hub) Subscribe() (*Queue, func()) {
	q := NewQueue()

	h.mu.Lock()
	for i, ok := range h.known {
		if ok {
			q.Push(h.last[i])
		}
	}
	h.subs[q] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, q)
			h.mu.Unlock()
		})
	}
	return q, cancel
}

// Publish delivers ev to every current subscriber
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	if i := stateSlot(ev.Type); i < len(h.last) {
		h.last[i] = ev
		h.known[i] = true
	}
	for q := range h.subs {
		q.Push(ev)
	}
	h.mu.Unlock()
}

// Subscribers returns the current subscriber count
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// stateSlot folds pointer move and leave into one slot so replay keeps only the latest
func stateSlot(t Type) int {
	if t == PointerLeave {
		return int(PointerMove)
	}
	return int(t)
}
