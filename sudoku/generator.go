package sudoku

import (
	"errors"
	"math/rand"
	"time"
)

// ErrGenerationFailed is returned when the randomized fill cannot
// complete a valid grid or the filled grid fails validation.
var ErrGenerationFailed = errors.New("failed to generate valid puzzle")

// Generator produces Sudoku puzzles of a given difficulty. Each
// generator owns its random source, so independent generators may run
// concurrently.
type Generator struct {
	difficulty Difficulty
	size       int
	sub        int
	rng        *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSize sets the board dimension. The default is 9.
func WithSize(size int) Option {
	return func(g *Generator) {
		g.size = size
	}
}

// WithRand sets the random source, making generation reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// NewGenerator returns a generator for the given difficulty. It fails
// if the configured size is not a positive perfect square.
func NewGenerator(difficulty Difficulty, opts ...Option) (*Generator, error) {
	g := &Generator{
		difficulty: difficulty,
		size:       9,
	}
	for _, opt := range opts {
		opt(g)
	}
	sub, err := subgridSize(g.size)
	if err != nil {
		return nil, err
	}
	g.sub = sub
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g, nil
}

// Generate builds a fresh puzzle: a fully valid grid is produced by
// randomized backtracking, verified, and then thinned out cell by cell
// until the difficulty's removal target is reached. The caller owns the
// returned grid; the solved grid is not retained.
func (g *Generator) Generate() (Grid, error) {
	board, err := NewGrid(g.size)
	if err != nil {
		return nil, err
	}

	if !g.fillBoard(board, 0, 0) {
		return nil, ErrGenerationFailed
	}
	if !IsValidSolution(board) {
		return nil, ErrGenerationFailed
	}

	g.removeCells(board)
	return board, nil
}

// fillBoard recursively fills the grid row-major, trying candidate
// values in a freshly shuffled order at every empty cell.
func (g *Generator) fillBoard(board Grid, row, col int) bool {
	if row == g.size-1 && col == g.size {
		return true
	}
	if col == g.size {
		row++
		col = 0
	}
	if board[row][col] != 0 {
		return g.fillBoard(board, row, col+1)
	}

	for _, n := range g.rng.Perm(g.size) {
		num := n + 1
		if g.isSafe(board, row, col, num) {
			board[row][col] = num
			if g.fillBoard(board, row, col+1) {
				return true
			}
		}
	}

	board[row][col] = 0
	return false
}

func (g *Generator) isSafe(board Grid, row, col, num int) bool {
	for i := 0; i < g.size; i++ {
		if board[row][i] == num || board[i][col] == num {
			return false
		}
	}
	startRow, startCol := row-row%g.sub, col-col%g.sub
	for r := startRow; r < startRow+g.sub; r++ {
		for c := startCol; c < startCol+g.sub; c++ {
			if board[r][c] == num {
				return false
			}
		}
	}
	return true
}

// removeCells blanks out cells in a shuffled order until the
// difficulty's target is met. A removal that would leave the board
// unsolvable is reverted and not counted. Running out of candidate
// cells before the target is accepted silently.
func (g *Generator) removeCells(board Grid) {
	cellsToRemove := g.difficulty.CellsToRemove()

	cells := make([][2]int, 0, g.size*g.size)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			cells = append(cells, [2]int{row, col})
		}
	}
	g.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	removed := 0
	for _, cell := range cells {
		row, col := cell[0], cell[1]
		original := board[row][col]
		board[row][col] = 0

		if !g.hasSolution(board) {
			board[row][col] = original
		} else {
			removed++
		}

		if removed >= cellsToRemove {
			break
		}
	}
}

// hasSolution asks the solver whether any completion exists. This only
// proves solvability, not uniqueness; two completions would go
// undetected. Kept deliberately, see DESIGN.md.
func (g *Generator) hasSolution(board Grid) bool {
	solver, err := NewSolver(board)
	if err != nil {
		return false
	}
	return solver.Solve()
}
