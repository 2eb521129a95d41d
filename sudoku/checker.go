package sudoku

import "slices"

// IsValidSolution reports whether every row, column, and subgrid block
// of g is a permutation of 1..N. A grid containing zeros or duplicates
// fails, since sorting such a unit can never reproduce 1..N exactly.
func IsValidSolution(g Grid) bool {
	size := g.Size()
	sub, err := subgridSize(size)
	if err != nil {
		return false
	}

	want := make([]int, size)
	for i := range want {
		want[i] = i + 1
	}

	unit := make([]int, size)

	for row := 0; row < size; row++ {
		copy(unit, g[row])
		if !isPermutation(unit, want) {
			return false
		}
	}

	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			unit[row] = g[row][col]
		}
		if !isPermutation(unit, want) {
			return false
		}
	}

	for row := 0; row < size; row += sub {
		for col := 0; col < size; col += sub {
			i := 0
			for r := row; r < row+sub; r++ {
				for c := col; c < col+sub; c++ {
					unit[i] = g[r][c]
					i++
				}
			}
			if !isPermutation(unit, want) {
				return false
			}
		}
	}

	return true
}

// isPermutation sorts unit in place and compares it against want.
func isPermutation(unit, want []int) bool {
	slices.Sort(unit)
	return slices.Equal(unit, want)
}
