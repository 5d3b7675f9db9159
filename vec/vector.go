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

// Package vec provides a fixed-length numeric vector and the dot product
// over it.
//
// A Vector either borrows the slice it was built from (New) or owns a
// private copy (Clone). Borrowed vectors are how matrix rows are handed to
// workers without copying; cloned vectors carry materialized columns.
package vec

import "github.com/ajroetker/go-matpool/num"

// Vector is an ordered, fixed-length sequence of numbers.
// It must not be modified once it has been handed to another goroutine.
type Vector[T num.Number] struct {
	data []T
}

// New returns a Vector that views elems without copying.
func New[T num.Number](elems []T) Vector[T] {
	return Vector[T]{data: elems}
}

// Clone returns a Vector that owns a copy of elems.
func Clone[T num.Number](elems []T) Vector[T] {
	data := make([]T, len(elems))
	copy(data, elems)
	return Vector[T]{data: data}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return len(v.data)
}

// At returns element i.
func (v Vector[T]) At(i int) T {
	return v.data[i]
}

// Data returns the underlying slice. Callers must treat it as read-only.
func (v Vector[T]) Data() []T {
	return v.data
}
