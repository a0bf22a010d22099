// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: implementations spawn their own goroutines and tie
// them to ctx. Stop blocks until those goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IntervalJob is a job started with a tick interval, such as the client
// refresh job.
type IntervalJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
