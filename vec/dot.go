package vec

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-matpool/num"
)

// ErrDimensionMismatch reports operands whose shapes do not line up.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Dot returns sum(u[i] * v[i]), accumulated in index order.
// u and v must have the same length.
func Dot[T num.Number](u, v Vector[T]) (T, error) {
	var sum T
	if len(u.data) != len(v.data) {
		return sum, fmt.Errorf("%w: vector lengths %d and %d", ErrDimensionMismatch, len(u.data), len(v.data))
	}
	for i, x := range u.data {
		sum += x * v.data[i]
	}
	return sum, nil
}
