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

package mat

import "github.com/ajroetker/go-matpool/num"

// MatMul computes A * B on the calling goroutine.
// It is the reference for Multiply and the faster choice for tiny inputs.
func MatMul[T num.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := checkDims(a, b); err != nil {
		return nil, err
	}
	m, n, k := a.rows, b.cols, a.cols
	c := make([]T, m*n)
	matmulScalar(a.data, b.data, c, m, n, k)
	return New(c, m, n), nil
}

// matmulScalar is the standard triple loop over row-major buffers.
// C[i,j] = sum(A[i,p] * B[p,j]) for p in 0..K-1; c must be zeroed.
func matmulScalar[T num.Number](a, b, c []T, m, n, k int) {
	for i := range m {
		for p := range k {
			aip := a[i*k+p]
			for j := range n {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}
