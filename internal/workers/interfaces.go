// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing the background jobs
// of the recipe client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several jobs as one unit.
package workers

import "context"

// Worker is the interface that must be implemented by any background job.
//
// Start must not block: implementations spawn their own goroutine and
// return. Stop blocks until that goroutine has exited and is safe to call
// on a worker that was never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
