// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mat provides dense row-major matrices and a concurrent matrix
// multiply that fans one dot product per output cell out to a fixed pool of
// workers.
//
// # Multiply
//
// Multiply validates shapes, starts a workerpool.Pool of W workers, and
// creates one Task per output cell. Task idx (row-major over the result)
// carries a zero-copy view of row i of A, a copy of column j of B, and its
// own reply channel, and is submitted to worker idx % W. Once every task is
// queued the pool is closed, so each worker exits after draining its
// channel. The calling goroutine then receives the replies in dispatch order
// and is the only writer of the result buffer.
//
// Usage:
//
//	a := mat.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b := mat.New([]int{7, 8, 9, 10, 11, 12}, 3, 2)
//	c, err := mat.Multiply(a, b, mat.WithNumWorkers(4))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c) // {58 64, 139 154}
//
// For many multiplies in a row, MultiplyWithPool reuses a caller-owned pool:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, layer := range layers {
//	    out, err = mat.MultiplyWithPool(pool, out, layer)
//	}
//
// # Errors
//
// Shape errors wrap ErrDimensionMismatch and are returned before any
// goroutine is started. A task whose reply channel is closed without a value
// fails the whole call with ErrChannelRecv. A task that cannot be queued
// fails the whole call with a *DispatchError wrapping ErrTaskSend. The
// operator form Matrix.Mul panics instead of returning.
package mat
