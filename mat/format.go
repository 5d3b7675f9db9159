package mat

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/samber/lo"

	"github.com/ajroetker/go-matpool/num"
)

// String renders the matrix as "{" rows joined by ", " "}", with the
// elements of a row separated by single spaces: {1 2 3, 4 5 6}.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range m.rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		row := m.data[i*m.cols : (i+1)*m.cols]
		sb.WriteString(strings.Join(lo.Map(row, func(v T, _ int) string {
			return fmt.Sprint(v)
		}), " "))
	}
	sb.WriteByte('}')
	return sb.String()
}

// GoString renders the matrix with its dimensions, as used by %#v:
// Matrix(row=2, col=3, {1 2 3, 4 5 6}).
func (m *Matrix[T]) GoString() string {
	return fmt.Sprintf("Matrix(row=%d, col=%d, %s)", m.rows, m.cols, m.String())
}

// Parse reads a matrix in the String format. Whitespace around rows and
// elements is ignored. Every row must have the same number of elements.
// Matrices without columns do not round-trip: "{}" parses as 0x0 and
// "{, }" is rejected.
func Parse[T num.Number](s string) (*Matrix[T], error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, fmt.Errorf("mat: parse %q: missing braces", s)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return New[T](nil, 0, 0), nil
	}

	rows := lo.Map(strings.Split(body, ","), func(r string, _ int) []string {
		return strings.Fields(r)
	})
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, fields := range rows {
		if len(fields) == 0 || len(fields) != cols {
			return nil, fmt.Errorf("%w: row %d has %d elements, want %d", ErrShape, i, len(fields), cols)
		}
		for _, f := range fields {
			v, err := parseElem[T](f)
			if err != nil {
				return nil, fmt.Errorf("mat: parse row %d: %w", i, err)
			}
			data = append(data, v)
		}
	}
	return New(data, len(rows), cols), nil
}

func parseElem[T num.Number](s string) (T, error) {
	var zero T
	bits := bitSize[T]()
	switch num.KindOf[T]() {
	case num.KindFloat:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	case num.KindUnsigned:
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return zero, err
		}
		return T(u), nil
	default:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	}
}

// bitSize returns the width of T in bits.
func bitSize[T num.Number]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}
