package sudoku

// Solver searches for a completion of a partially filled grid with
// plain backtracking. It works on its own copy of the input, so the
// caller's grid is never touched.
type Solver struct {
	grid Grid
	size int
	sub  int
}

// NewSolver returns a solver over a private copy of g. The grid size
// must be a perfect square.
func NewSolver(g Grid) (*Solver, error) {
	sub, err := subgridSize(g.Size())
	if err != nil {
		return nil, err
	}
	return &Solver{grid: g.Clone(), size: g.Size(), sub: sub}, nil
}

// Solve reports whether a complete valid assignment is reachable from
// the starting grid. On success the internal copy holds that solution;
// on failure its contents are unspecified. "No solution" is an ordinary
// outcome, not an error.
func (s *Solver) Solve() bool {
	row, col, ok := s.findEmptyCell()
	if !ok {
		return true
	}

	for num := 1; num <= s.size; num++ {
		if s.isValid(row, col, num) {
			s.grid[row][col] = num
			if s.Solve() {
				return true
			}
			s.grid[row][col] = 0
		}
	}

	return false
}

// Solution returns the solver's internal grid. It is only meaningful
// after Solve has returned true.
func (s *Solver) Solution() Grid {
	return s.grid
}

// findEmptyCell scans row-major for the first zero cell.
func (s *Solver) findEmptyCell() (int, int, bool) {
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			if s.grid[row][col] == 0 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

func (s *Solver) isValid(row, col, num int) bool {
	for i := 0; i < s.size; i++ {
		if s.grid[row][i] == num || s.grid[i][col] == num {
			return false
		}
	}
	startRow, startCol := row-row%s.sub, col-col%s.sub
	for r := startRow; r < startRow+s.sub; r++ {
		for c := startCol; c < startCol+s.sub; c++ {
			if s.grid[r][c] == num {
				return false
			}
		}
	}
	return true
}
