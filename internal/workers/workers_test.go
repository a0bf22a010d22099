// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that records Start and Stop calls into a shared log.
type mockWorker struct {
	name string
	log  *[]string
}

func (m *mockWorker) Start(context.Context) {
	*m.log = append(*m.log, "start "+m.name)
}

func (m *mockWorker) Stop() {
	*m.log = append(*m.log, "stop "+m.name)
}

func TestWorkers_StartStop_Order(t *testing.T) {
	var log []string
	ws := NewWorkers(&mockWorker{"a", &log}, &mockWorker{"b", &log}, &mockWorker{"c", &log})

	ws.Start(context.Background())
	ws.Stop()

	want := []string{"start a", "start b", "start c", "stop c", "stop b", "stop a"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("call[%d]: expected %q, got %q", i, want[i], log[i])
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

// spyJob records the interval it was started with.
type spyJob struct {
	interval time.Duration
	stopped  bool
}

func (j *spyJob) Start(_ context.Context, interval time.Duration) { j.interval = interval }
func (j *spyJob) Stop()                                           { j.stopped = true }

func TestEvery_PassesInterval(t *testing.T) {
	job := &spyJob{}
	w := Every(time.Minute, job)

	w.Start(context.Background())
	w.Stop()

	if job.interval != time.Minute {
		t.Errorf("expected interval 1m, got %v", job.interval)
	}
	if !job.stopped {
		t.Error("expected job to be stopped")
	}
}
