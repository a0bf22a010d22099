package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/insighted-client/internal/refresh"
)

type clientRefreshJob struct {
	broadcaster *refresh.Broadcaster

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a job that publishes an unscoped refresh
// signal on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(broadcaster *refresh.Broadcaster) ClientRefreshJob {
	return &clientRefreshJob{broadcaster: broadcaster}
}

// Start implements ClientRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.broadcaster.Publish(refresh.Signal{})
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not
// running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
