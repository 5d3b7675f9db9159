// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"bytes"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-matpool/num"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	t.Setenv(num.EnvNumWorkers, "")
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(num.EnvNumWorkers, "3")
	pool := New(-1)
	defer pool.Close()

	assert.Equal(t, 3, pool.NumWorkers())
}

func TestSubmitRoundRobin(t *testing.T) {
	pool := New(4)

	n := 100
	results := make([]int, n)
	for i := range n {
		require.NoError(t, pool.Submit(i%pool.NumWorkers(), func() {
			results[i] = i * 2
		}))
	}
	pool.Close()
	pool.Wait()

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
	assert.Equal(t, []int64{25, 25, 25, 25}, pool.Completed())
}

func TestSubmitFewerItemsThanWorkers(t *testing.T) {
	pool := New(8)

	var count atomic.Int32
	for i := range 3 {
		require.NoError(t, pool.Submit(i, func() { count.Add(1) }))
	}
	pool.Close()
	pool.Wait()

	assert.Equal(t, int32(3), count.Load())
	assert.Equal(t, []int64{1, 1, 1, 0, 0, 0, 0, 0}, pool.Completed())
}

func TestSubmitPinsWorker(t *testing.T) {
	pool := New(3)

	// Items on one worker run in submission order.
	var mu sync.Mutex
	var order []int
	for i := range 10 {
		require.NoError(t, pool.Submit(1, func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	pool.Close()
	pool.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
	assert.Equal(t, []int64{0, 10, 0}, pool.Completed())
}

func TestSubmitNoSuchWorker(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	assert.ErrorIs(t, pool.Submit(2, func() {}), ErrNoSuchWorker)
	assert.ErrorIs(t, pool.Submit(-1, func() {}), ErrNoSuchWorker)
}

func TestSubmitAfterClose(t *testing.T) {
	pool := New(2)
	pool.Close()

	assert.ErrorIs(t, pool.Submit(0, func() {}), ErrClosed)
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
	pool.Wait()
}

func TestStates(t *testing.T) {
	pool := New(2)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, pool.Submit(0, func() {
		close(started)
		<-release
	}))
	<-started

	assert.Equal(t, Busy, pool.State(0))
	close(release)

	pool.Close()
	pool.Wait()
	assert.Equal(t, Closed, pool.State(0))
	assert.Equal(t, Closed, pool.State(1))
}

func TestPanickingItemKeepsWorker(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	pool := New(1, WithLogger(logger))

	var ran atomic.Bool
	require.NoError(t, pool.Submit(0, func() { panic("boom") }))
	require.NoError(t, pool.Submit(0, func() { ran.Store(true) }))
	pool.Close()
	pool.Wait()

	assert.True(t, ran.Load())
	assert.Contains(t, buf.String(), "work item panicked")
	assert.Equal(t, []int64{2}, pool.Completed())
}

func TestWorkerStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "busy", Busy.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "unknown", WorkerState(9).String())
}

func BenchmarkSubmit(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	var wg sync.WaitGroup
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		_ = pool.Submit(i%pool.NumWorkers(), wg.Done)
	}
	wg.Wait()
}
