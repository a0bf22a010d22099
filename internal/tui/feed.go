package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// feed turns a callback subscription into a stream of tea messages. At most
// one value is pending: a value published while another is still unread is
// combined with it by merge.
type feed[T any] struct {
	ch          chan T
	done        chan struct{}
	once        sync.Once
	merge       func(pending, next T) T
	unsubscribe func()

	mu sync.Mutex
}

func newFeed[T any](subscribe func(func(T)) func(), merge func(pending, next T) T) *feed[T] {
	f := &feed[T]{
		ch:    make(chan T, 1),
		done:  make(chan struct{}),
		merge: merge,
	}
	f.unsubscribe = subscribe(f.push)
	return f
}

// push never blocks the publisher.
func (f *feed[T]) push(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case pending := <-f.ch:
		v = f.merge(pending, v)
	default:
	}
	f.ch <- v
}

// wait returns a command that delivers the next value wrapped by wrap, or nil
// once the feed is closed.
func (f *feed[T]) wait(wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case v := <-f.ch:
			return wrap(v)
		case <-f.done:
			return nil
		}
	}
}

func (f *feed[T]) close() {
	f.once.Do(func() {
		f.unsubscribe()
		close(f.done)
	})
}

func latest[T any](_, next T) T {
	return next
}
