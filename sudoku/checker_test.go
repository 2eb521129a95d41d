package sudoku

import "testing"

var solvedGrid = Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestIsValidSolutionSolvedGrid(t *testing.T) {
	if !IsValidSolution(solvedGrid) {
		t.Fatal("canonical solved grid reported invalid")
	}
}

func TestIsValidSolutionEmptyGrid(t *testing.T) {
	g, err := NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid(9) failed: %v", err)
	}
	if IsValidSolution(g) {
		t.Fatal("all-zero grid reported valid")
	}
}

func TestIsValidSolutionDuplicates(t *testing.T) {
	cases := []struct {
		name     string
		row, col int
		value    int
	}{
		{"duplicate in row", 0, 2, 5},
		{"duplicate in column", 3, 0, 5},
		{"duplicate in block", 1, 1, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := solvedGrid.Clone()
			g[tc.row][tc.col] = tc.value
			if IsValidSolution(g) {
				t.Fatalf("grid with %s reported valid", tc.name)
			}
		})
	}
}

func TestIsValidSolutionIsPure(t *testing.T) {
	g := solvedGrid.Clone()
	first := IsValidSolution(g)
	second := IsValidSolution(g)
	if first != second {
		t.Fatalf("results differ across calls: %v then %v", first, second)
	}
	if !g.Equal(solvedGrid) {
		t.Fatal("checker mutated its input")
	}
}
