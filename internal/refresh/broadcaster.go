// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package refresh carries the "data changed, re-fetch" signal between the
// services that mutate backend state and the views that display it.
package refresh

import (
	"sync"

	"github.com/MKhiriev/insighted-client/models"
)

// Signal tells listeners that backend data for Scope may have changed.
// A zero Scope means "everything".
type Signal struct {
	Scope models.Scope
}

// Affects reports whether a view showing scope should re-fetch on s.
func (s Signal) Affects(scope models.Scope) bool {
	if s.Scope.Unscoped() || scope.Unscoped() {
		return true
	}
	return s.Scope.Subject == scope.Subject
}

// Listener receives published signals. It runs on the publisher's goroutine
// and must not block.
type Listener func(Signal)

// Broadcaster fans a [Signal] out to every current subscriber.
// It is safe for concurrent use.
type Broadcaster struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[uint64]Listener
}

// NewBroadcaster returns a broadcaster with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: make(map[uint64]Listener)}
}

// Subscribe registers fn and returns the function that removes it. The
// returned function is idempotent.
func (b *Broadcaster) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers s to every listener subscribed at call time.
// Delivery order between listeners is unspecified.
func (b *Broadcaster) Publish(s Signal) {
	b.mu.RLock()
	listeners := make([]Listener, 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(s)
	}
}

// Len returns the number of current subscribers.
func (b *Broadcaster) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
