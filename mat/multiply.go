package mat

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajroetker/go-matpool/num"
	"github.com/ajroetker/go-matpool/vec"
	"github.com/ajroetker/go-matpool/workerpool"
)

// Task is one output cell of a product: the dot product of a row of A and a
// column of B, destined for cell Index of the result.
type Task[T num.Number] struct {
	Index int
	Row   vec.Vector[T] // view into A
	Col   vec.Vector[T] // owned copy of a column of B

	// reply carries exactly one TaskResult, or is closed empty on failure.
	reply chan<- TaskResult[T]

	// dot overrides vec.Dot when set.
	dot func(u, v vec.Vector[T]) (T, error)
}

// TaskResult is the computed value for one output cell.
type TaskResult[T num.Number] struct {
	Index int
	Value T
}

// run computes the task on a worker and reports through the reply channel.
// The channel is always closed so the assembler never waits forever.
func (t Task[T]) run(logger *slog.Logger, worker int) {
	defer close(t.reply)
	dot := t.dot
	if dot == nil {
		dot = vec.Dot[T]
	}
	v, err := dot(t.Row, t.Col)
	if err != nil {
		logger.Error("dot product failed", "task", t.Index, "worker", worker, "err", err)
		return
	}
	t.reply <- TaskResult[T]{Index: t.Index, Value: v}
}

func checkDims[T num.Number](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return nil
}

// Multiply computes A * B with a fresh pool of workers that lives only for
// this call; every worker has exited by the time it returns. See the package
// documentation for the dispatch scheme.
func Multiply[T num.Number](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	cfg := newConfig(opts)
	if err := checkDims(a, b); err != nil {
		return nil, err
	}

	pool := workerpool.New(cfg.numWorkers, workerpool.WithLogger(cfg.logger))
	defer func() {
		pool.Close()
		pool.Wait()
	}()
	replies, err := dispatch(pool, a.rows*b.cols, cellTask(a, b), cfg.logger)
	// Release the senders: each worker exits once its queue is drained.
	pool.Close()
	if err != nil {
		return nil, err
	}
	return assemble(replies, a.rows, b.cols, pool.NumWorkers(), cfg.logger)
}

// MultiplyWithPool computes A * B on a caller-owned pool, which stays open.
// Task idx goes to worker idx % pool.NumWorkers().
func MultiplyWithPool[T num.Number](pool *workerpool.Pool, a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	cfg := newConfig(opts)
	if err := checkDims(a, b); err != nil {
		return nil, err
	}

	replies, err := dispatch(pool, a.rows*b.cols, cellTask(a, b), cfg.logger)
	if err != nil {
		return nil, err
	}
	return assemble(replies, a.rows, b.cols, pool.NumWorkers(), cfg.logger)
}

// Mul returns m * b and panics if the product is not defined. Use Multiply
// to get the error instead.
func (m *Matrix[T]) Mul(b *Matrix[T]) *Matrix[T] {
	c, err := Multiply(m, b)
	if err != nil {
		panic(fmt.Sprintf("matrix multiply error: %v", err))
	}
	return c
}

// cellTask builds the task for output cell idx of a * b.
func cellTask[T num.Number](a, b *Matrix[T]) func(idx int) Task[T] {
	return func(idx int) Task[T] {
		i, j := idx/b.cols, idx%b.cols
		return Task[T]{Index: idx, Row: a.Row(i), Col: b.Col(j)}
	}
}

// dispatch creates tasks 0..n-1 in order, gives each a fresh reply channel,
// and submits task idx to worker idx % W. Any task that cannot be queued
// fails the whole dispatch.
func dispatch[T num.Number](pool *workerpool.Pool, n int, build func(idx int) Task[T], logger *slog.Logger) ([]<-chan TaskResult[T], error) {
	w := pool.NumWorkers()
	replies := make([]<-chan TaskResult[T], n)

	var failed []int
	var errs []error
	for idx := range n {
		reply := make(chan TaskResult[T], 1)
		task := build(idx)
		task.reply = reply

		worker := idx % w
		if err := pool.Submit(worker, func() { task.run(logger, worker) }); err != nil {
			logger.Error("task dispatch failed", "task", idx, "worker", worker, "err", err)
			failed = append(failed, idx)
			errs = append(errs, fmt.Errorf("task %d: %w", idx, err))
			continue
		}
		replies[idx] = reply
	}

	if len(failed) > 0 {
		return nil, &DispatchError{Indices: failed, Err: errors.Join(errs...)}
	}
	return replies, nil
}

// assemble waits for every reply in dispatch order and writes each value to
// its cell. It is the only writer of the result buffer.
func assemble[T num.Number](replies []<-chan TaskResult[T], rows, cols, workers int, logger *slog.Logger) (*Matrix[T], error) {
	start := time.Now()
	data := make([]T, rows*cols)
	for idx, rx := range replies {
		res, ok := <-rx
		if !ok {
			return nil, fmt.Errorf("%w: task %d", ErrChannelRecv, idx)
		}
		data[res.Index] = res.Value
	}
	logger.Debug("multiply assembled",
		"rows", rows, "cols", cols, "tasks", len(replies), "workers", workers,
		"wait", time.Since(start))
	return New(data, rows, cols), nil
}
