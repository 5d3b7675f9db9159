package mat

import (
	"fmt"
	"slices"

	"github.com/ajroetker/go-matpool/num"
	"github.com/ajroetker/go-matpool/vec"
)

// Matrix is a dense matrix stored row-major in a single buffer.
// Its dimensions never change after construction.
type Matrix[T num.Number] struct {
	data []T
	rows int
	cols int
}

// New creates a rows x cols matrix backed by data, which is used directly.
// It panics with ErrShape if len(data) != rows*cols.
func New[T num.Number](data []T, rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		panic(fmt.Errorf("%w: %d elements for %dx%d", ErrShape, len(data), rows, cols))
	}
	return &Matrix[T]{data: data, rows: rows, cols: cols}
}

// Zeros creates a rows x cols matrix filled with the zero value.
func Zeros[T num.Number](rows, cols int) *Matrix[T] {
	return New(make([]T, rows*cols), rows, cols)
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mat: index (%d, %d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Data returns a copy of the row-major buffer.
func (m *Matrix[T]) Data() []T {
	return slices.Clone(m.data)
}

// Row returns row i as a view into the matrix buffer. No data is copied.
func (m *Matrix[T]) Row(i int) vec.Vector[T] {
	return vec.New(m.data[i*m.cols : (i+1)*m.cols])
}

// Col returns column j as an owned vector. Columns are strided in a
// row-major buffer, so every cols-th element starting at j is copied.
func (m *Matrix[T]) Col(j int) vec.Vector[T] {
	col := make([]T, 0, m.rows)
	for k := j; k < len(m.data); k += m.cols {
		col = append(col, m.data[k])
	}
	return vec.New(col)
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.rows == other.rows && m.cols == other.cols && slices.Equal(m.data, other.data)
}
