package main

import (
	"encoding/json"

	"github.com/itacentury/sudoku/sudoku"
)

type coordinate struct {
	row, col int
}

// Board wraps a generated puzzle with everything the game tracks on top
// of it: the cursor, a pristine copy for resets, and the currently
// highlighted number.
type Board struct {
	Grid        sudoku.Grid
	ResetGrid   sudoku.Grid
	cursor      coordinate
	highlighted int
	difficulty  sudoku.Difficulty
}

func NewBoard(grid sudoku.Grid, difficulty sudoku.Difficulty) *Board {
	return &Board{
		Grid:       grid,
		ResetGrid:  grid.Clone(),
		difficulty: difficulty,
	}
}

// IsFixed reports whether the cell is one of the puzzle's givens.
func (b *Board) IsFixed(row, col int) bool {
	return b.ResetGrid[row][col] != 0
}

// Set places a value at the cursor unless the cell is a given.
func (b *Board) Set(value int) bool {
	if b.IsFixed(b.cursor.row, b.cursor.col) {
		return false
	}
	b.Grid[b.cursor.row][b.cursor.col] = value
	return true
}

// Reset restores the board to its initial puzzle state.
func (b *Board) Reset() {
	b.Grid = b.ResetGrid.Clone()
}

func (b *Board) Cursor() coordinate {
	return b.cursor
}

func (b *Board) CursorUp() {
	if b.cursor.row > 0 {
		b.cursor.row--
	}
}

func (b *Board) CursorDown() {
	if b.cursor.row < b.Grid.Size()-1 {
		b.cursor.row++
	}
}

func (b *Board) CursorLeft() {
	if b.cursor.col > 0 {
		b.cursor.col--
	}
}

func (b *Board) CursorRight() {
	if b.cursor.col < b.Grid.Size()-1 {
		b.cursor.col++
	}
}

// Highlighted returns the currently highlighted number, 0 meaning none.
func (b *Board) Highlighted() int {
	return b.highlighted
}

// SetHighlighted ignores values outside 0..N.
func (b *Board) SetHighlighted(value int) {
	if value < 0 || value > b.Grid.Size() {
		return
	}
	b.highlighted = value
}

func (b *Board) IncrHighlighted() {
	b.SetHighlighted(b.highlighted + 1)
}

func (b *Board) DecrHighlighted() {
	b.SetHighlighted(b.highlighted - 1)
}

type boardJSON struct {
	Grid      [][]int `json:"grid"`
	ResetGrid [][]int `json:"reset_grid"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{
		Grid:      b.Grid,
		ResetGrid: b.ResetGrid,
	})
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var bj boardJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	b.Grid = bj.Grid
	b.ResetGrid = bj.ResetGrid
	return nil
}
