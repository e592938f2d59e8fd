package service

import (
	"sync"

	"github.com/limbo/ascent/pkg/entity"
)

type SessionEventKind string

const (
	SessionSignedIn       SessionEventKind = "signed_in"
	SessionSignedOut      SessionEventKind = "signed_out"
	SessionTokenRefreshed SessionEventKind = "token_refreshed"
)

// SessionEvent carries the user the session now belongs to.
// For SessionSignedOut it is the user that just left.
type SessionEvent struct {
	Kind SessionEventKind
	User *entity.User
}

type subscriber struct {
	id int
	cb func(SessionEvent)
}

// SessionHub fans session transitions out to subscribers in registration order.
type SessionHub struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID int
}

func NewSessionHub() *SessionHub {
	return &SessionHub{}
}

// Subscribe registers cb. The returned func removes it and may be called any number of times.
func (h *SessionHub) Subscribe(cb func(SessionEvent)) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber{id: id, cb: cb})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for i, s := range h.subs {
				if s.id == id {
					h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Publish calls subscribers synchronously. Callbacks may subscribe or unsubscribe.
func (h *SessionHub) Publish(ev SessionEvent) {
	h.mu.Lock()
	subs := make([]subscriber, len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()
	for _, s := range subs {
		s.cb(ev)
	}
}
