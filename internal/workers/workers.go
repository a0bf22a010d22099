package workers

import (
	"context"
	"time"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type intervalWorker struct {
	job      IntervalJob
	interval time.Duration
}

// Every adapts job into a Worker ticking at interval.
func Every(interval time.Duration, job IntervalJob) Worker {
	return &intervalWorker{job: job, interval: interval}
}

func (w *intervalWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *intervalWorker) Stop() {
	w.job.Stop()
}
