// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package async provides a keyed loader that keeps only the result of the
// most recently requested key.
//
// A view holds one [Loader] per data set. Every call to [Loader.Load] starts
// a new generation and cancels the context of the previous in-flight fetch,
// so a slow response for an old key can never overwrite the state produced
// for a newer one.
package async

import (
	"context"
	"sync"
)

// FetchFunc loads the value for key. It must honour ctx cancellation.
type FetchFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// State is the observable status of a [Loader].
type State[K comparable, V any] struct {
	Key     K
	Loading bool
	Data    V
	Err     error
}

// Loader runs fetches for a key and discards superseded results.
type Loader[K comparable, V any] struct {
	fetch FetchFunc[K, V]

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  State[K, V]
}

// NewLoader returns a loader backed by fetch.
func NewLoader[K comparable, V any](fetch FetchFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{fetch: fetch}
}

// Load fetches key, superseding any load still in flight. It blocks until the
// fetch returns and reports whether its result became the current state.
// When applied is false the returned state is the current one, not the
// discarded result.
func (l *Loader[K, V]) Load(ctx context.Context, key K) (state State[K, V], applied bool) {
	ctx, gen := l.begin(ctx, key)

	data, err := l.fetch(ctx, key)

	return l.commit(gen, data, err)
}

func (l *Loader[K, V]) begin(ctx context.Context, key K) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	l.cancel = cancel

	// A reload of the same key keeps the previous data visible.
	next := State[K, V]{Key: key, Loading: true}
	if l.gen > 1 && l.state.Key == key {
		next.Data = l.state.Data
	}
	l.state = next

	return ctx, l.gen
}

func (l *Loader[K, V]) commit(gen uint64, data V, err error) (State[K, V], bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		return l.state, false
	}

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	// A failed load leaves the data of the previous load of this key.
	l.state.Loading = false
	l.state.Err = err
	if err == nil {
		l.state.Data = data
	}
	return l.state, true
}

// State returns a snapshot of the current state.
func (l *Loader[K, V]) State() State[K, V] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Close cancels the in-flight load, if any. Its result will be discarded.
func (l *Loader[K, V]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gen++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.state.Loading = false
}
