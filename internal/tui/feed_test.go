package tui

import (
	"testing"

	"github.com/MKhiriev/insighted-client/internal/refresh"
	"github.com/MKhiriev/insighted-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignalFeed(b *refresh.Broadcaster) *feed[refresh.Signal] {
	return newFeed(func(fn func(refresh.Signal)) func() {
		return b.Subscribe(fn)
	}, mergeSignals)
}

func wrapSignal(s refresh.Signal) tea.Msg { return refreshMsg{signal: s} }

func TestFeed_DeliversPublishedSignal(t *testing.T) {
	b := refresh.NewBroadcaster()
	f := newSignalFeed(b)
	defer f.close()

	scope := models.Scope{Subject: "MATH101", AcademicYear: "2023-2024"}
	b.Publish(refresh.Signal{Scope: scope})

	msg := f.wait(wrapSignal)()
	require.IsType(t, refreshMsg{}, msg)
	assert.Equal(t, scope, msg.(refreshMsg).signal.Scope)
}

func TestFeed_PendingSignalsAreMerged(t *testing.T) {
	b := refresh.NewBroadcaster()
	f := newSignalFeed(b)
	defer f.close()

	math := models.Scope{Subject: "MATH101", AcademicYear: "2023-2024"}
	b.Publish(refresh.Signal{Scope: math})
	b.Publish(refresh.Signal{Scope: math})
	assert.Equal(t, refreshMsg{signal: refresh.Signal{Scope: math}}, f.wait(wrapSignal)())

	b.Publish(refresh.Signal{Scope: math})
	b.Publish(refresh.Signal{Scope: models.Scope{Subject: "SCI201", AcademicYear: "2023-2024"}})
	assert.Equal(t, refreshMsg{signal: refresh.Signal{}}, f.wait(wrapSignal)())
}

func TestFeed_CloseUnsubscribesAndReleasesWaiters(t *testing.T) {
	b := refresh.NewBroadcaster()
	f := newSignalFeed(b)
	require.Equal(t, 1, b.Len())

	done := make(chan tea.Msg)
	go func() { done <- f.wait(wrapSignal)() }()

	f.close()
	f.close()

	assert.Nil(t, <-done)
	assert.Zero(t, b.Len())

	// A publish after close must not block.
	b.Publish(refresh.Signal{})
}

func TestLatest(t *testing.T) {
	assert.Equal(t, 2, latest(1, 2))
}
