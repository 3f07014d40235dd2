// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

// Workers starts its members in registration order and stops them in
// reverse order.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
	started bool
}

// NewWorkers builds the aggregate. Nil workers are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Start starts every worker. Calling Start twice without Stop is a no-op.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.started = true
}

// Stop stops every worker, last started first.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.started = false
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
