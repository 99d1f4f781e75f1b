// Package events is an in-process signal bus for session and HTTP status
// events. Handlers run synchronously on the publishing goroutine, in
// subscription order; they must not block.
package events

import (
	"sync"
)

type Kind string

const (
	SessionExpired Kind = "session_expired"
	TokenRefreshed Kind = "token_refreshed"
	Forbidden      Kind = "forbidden"
	NotFound       Kind = "not_found"
	RateLimited    Kind = "rate_limited"
	ServerError    Kind = "server_error"
)

// Event carries optional request context. Status is 0 for non-HTTP events.
type Event struct {
	Kind      Kind
	Status    int
	Method    string
	Path      string
	RequestID string
	Message   string
	Err       error
}

type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Kind][]subscription
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Kind][]subscription)}
}

// Subscribe registers h for kind. The returned func removes it and is safe to
// call more than once. On a nil bus nothing is registered.
func (b *Bus) Subscribe(kind Kind, h Handler) (unsubscribe func()) {
	if b == nil {
		return func() {}
	}
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[kind] = append(b.subs[kind], subscription{id: id, fn: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(kind, id) })
	}
}

func (b *Bus) remove(kind Kind, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[kind]
	for i, s := range subs {
		if s.id == id {
			b.subs[kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to the handlers of e.Kind. A nil bus drops the event.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subs := b.subs[e.Kind]
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(e)
	}
}
