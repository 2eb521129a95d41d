package sudoku

import (
	"errors"
	"math"
)

// ErrInvalidSize is returned when a board size has no integer square
// root, so no subgrid layout exists for it.
var ErrInvalidSize = errors.New("board size must be a perfect square")

// Grid is an N×N Sudoku board. A zero cell is empty, non-zero cells hold
// values in 1..N.
type Grid [][]int

// NewGrid returns an empty grid of the given size. The size must be a
// positive perfect square (4, 9, 16, ...).
func NewGrid(size int) (Grid, error) {
	if _, err := subgridSize(size); err != nil {
		return nil, err
	}
	g := make(Grid, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g, nil
}

func subgridSize(size int) (int, error) {
	if size < 1 {
		return 0, ErrInvalidSize
	}
	sub := int(math.Sqrt(float64(size)))
	if sub*sub != size {
		return 0, ErrInvalidSize
	}
	return sub, nil
}

// Size returns the board dimension N.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = make([]int, len(row))
		copy(c[i], row)
	}
	return c
}

// CountZeros returns the number of empty cells.
func (g Grid) CountZeros() int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids hold the same values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i, row := range g {
		if len(row) != len(other[i]) {
			return false
		}
		for j, v := range row {
			if v != other[i][j] {
				return false
			}
		}
	}
	return true
}
