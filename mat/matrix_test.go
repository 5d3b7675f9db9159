package mat

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanicsOnShape(t *testing.T) {
	assert.PanicsWithError(t, "mat: data length does not match dimensions: 5 elements for 2x3", func() {
		New([]int{1, 2, 3, 4, 5}, 2, 3)
	})
}

func TestDims(t *testing.T) {
	m := New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.At(1, 2))
	assert.Panics(t, func() { m.At(2, 0) })
}

func TestRowIsView(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	m := New(data, 2, 3)
	row := m.Row(1)

	if diff := cmp.Diff([]int{4, 5, 6}, row.Data()); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}
	data[4] = 50
	assert.Equal(t, 50, row.At(1))
}

func TestColIsCopy(t *testing.T) {
	data := []int{7, 8, 9, 10, 11, 12}
	b := New(data, 3, 2)

	tests := []struct {
		j    int
		want []int
	}{
		{0, []int{7, 9, 11}},
		{1, []int{8, 10, 12}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.j), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, b.Col(tt.j).Data()); diff != "" {
				t.Errorf("Col(%d) mismatch (-want +got):\n%s", tt.j, diff)
			}
		})
	}

	col := b.Col(1)
	data[1] = 80
	assert.Equal(t, 8, col.At(0))
}

func TestDataIsCopy(t *testing.T) {
	m := New([]float64{1, 2}, 1, 2)
	d := m.Data()
	d[0] = 9
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestEqual(t *testing.T) {
	a := New([]int{1, 2, 3, 4}, 2, 2)

	assert.True(t, a.Equal(New([]int{1, 2, 3, 4}, 2, 2)))
	assert.False(t, a.Equal(New([]int{1, 2, 3, 4}, 1, 4)))
	assert.False(t, a.Equal(New([]int{1, 2, 3, 5}, 2, 2)))
	assert.False(t, a.Equal(nil))

	var none *Matrix[int]
	assert.True(t, none.Equal(nil))
}

func TestZeros(t *testing.T) {
	z := Zeros[float32](2, 3)
	require.Equal(t, 6, len(z.Data()))
	assert.Equal(t, "{0 0 0, 0 0 0}", z.String())
}
