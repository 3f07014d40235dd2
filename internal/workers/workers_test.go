// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// countingWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type countingWorker struct {
	starts int
	stops  int
}

func (m *countingWorker) Start(context.Context) { m.starts++ }
func (m *countingWorker) Stop() { m.stops++ }

// orderWorker records its ID into a shared journal.
type orderWorker struct {
	id      int
	journal *[]int
}

func (o *orderWorker) Start(context.Context) { *o.journal = append(*o.journal, o.id) }
func (o *orderWorker) Stop() { *o.journal = append(*o.journal, -o.id) }

// ── Start ────────────────────────────────────────────────────────────────────

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.starts, "worker[%d]", i)
	}
}

func TestWorkers_Start_Twice(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Start(context.Background())

	assert.Equal(t, 1, w.starts)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
	assert.Equal(t, 0, ws.Len())
}

func TestWorkers_SkipsNil(t *testing.T) {
	ws := NewWorkers(nil, &countingWorker{}, nil)

	assert.Equal(t, 1, ws.Len())
}

// ── Stop ─────────────────────────────────────────────────────────────────────

func TestWorkers_Order(t *testing.T) {
	journal := []int{}
	ws := NewWorkers(
		&orderWorker{id: 1, journal: &journal},
		&orderWorker{id: 2, journal: &journal},
		&orderWorker{id: 3, journal: &journal},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []int{1, 2, 3, -3, -2, -1}, journal)
}

func TestWorkers_RestartAfterStop(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Stop()
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, 2, w.starts)
	assert.Equal(t, 2, w.stops)
}

func TestWorkers_BackgroundJobMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockBackgroundJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx),
		job.EXPECT().Stop(),
	)

	ws := NewWorkers(job)
	ws.Start(ctx)
	ws.Stop()
}
