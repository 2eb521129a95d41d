package main

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/itacentury/sudoku/sudoku"
)

func newAITestPlayer() *aiPlayer {
	return &aiPlayer{rng: rand.New(rand.NewSource(1))}
}

func TestAIMovesTowardNearestEmptyCell(t *testing.T) {
	b := newTestBoard(t)
	// Fill everything except (2,3); cursor sits at (0,0).
	for row := range b.Grid {
		for col := range b.Grid[row] {
			b.Grid[row][col] = 1
		}
	}
	b.Grid[2][3] = 0

	ai := newAITestPlayer()

	// Horizontal steps first, then vertical, per move.
	for i := 0; i < 3; i++ {
		if move := ai.calcMove(b); move != moveRight {
			t.Fatalf("step %d: got %q, want %q", i, move, moveRight)
		}
		b.CursorRight()
	}
	for i := 0; i < 2; i++ {
		if move := ai.calcMove(b); move != moveDown {
			t.Fatalf("step %d: got %q, want %q", i, move, moveDown)
		}
		b.CursorDown()
	}
}

func TestAIPlacesValidDigit(t *testing.T) {
	solved := sudoku.Grid{
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
	b := NewBoard(solved.Clone(), sudoku.Easy)
	b.Grid[0][0] = 0 // only 5 fits here

	ai := newAITestPlayer()
	move := ai.calcMove(b)
	digit, err := strconv.Atoi(move)
	if err != nil {
		t.Fatalf("got move %q, want a digit", move)
	}
	if digit != 5 {
		t.Fatalf("AI placed %d, want the forced 5", digit)
	}
	if b.Highlighted() != 5 {
		t.Fatalf("highlight is %d, want 5", b.Highlighted())
	}
}

func TestAIChecksWhenBoardFull(t *testing.T) {
	b := newTestBoard(t)
	for row := range b.Grid {
		for col := range b.Grid[row] {
			b.Grid[row][col] = 1
		}
	}

	if move := newAITestPlayer().calcMove(b); move != moveCheck {
		t.Fatalf("got %q, want %q on a full board", move, moveCheck)
	}
}

func TestAIChecksWhenStuck(t *testing.T) {
	b := newTestBoard(t)
	// Row 0: cell (0,8) empty but every digit conflicts.
	for col := 0; col < 8; col++ {
		b.Grid[0][col] = col + 1
	}
	b.Grid[1][8] = 9
	// Fill the rest so (0,8) is the only empty cell.
	for row := 1; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if b.Grid[row][col] == 0 {
				b.Grid[row][col] = 1
			}
		}
	}

	b.cursor = coordinate{row: 0, col: 8}
	if move := newAITestPlayer().calcMove(b); move != moveCheck {
		t.Fatalf("got %q, want %q when no digit fits", move, moveCheck)
	}
}
