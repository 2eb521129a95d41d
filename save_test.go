package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/itacentury/sudoku/sudoku"
)

var savePuzzle = sudoku.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func newTestGame(t *testing.T) *GameModel {
	t.Helper()
	return &GameModel{
		board:          NewBoard(savePuzzle.Clone(), sudoku.Medium),
		playerName:     "tester",
		difficulty:     sudoku.Medium,
		startTime:      time.Now().Add(-90 * time.Second),
		errCoordinates: make(map[coordinate]bool),
	}
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	g := newTestGame(t)
	g.board.CursorRight()
	g.board.CursorRight()
	g.board.Set(4) // user move at (0,2)

	if err := g.saveSession(path); err != nil {
		t.Fatalf("saveSession failed: %v", err)
	}

	restored := newTestGame(t)
	restored.board = NewBoard(savePuzzle.Clone(), sudoku.Easy) // different state
	if err := restored.loadSession(path); err != nil {
		t.Fatalf("loadSession failed: %v", err)
	}

	if restored.playerName != "tester" {
		t.Fatalf("player name %q, want %q", restored.playerName, "tester")
	}
	if restored.difficulty != sudoku.Medium {
		t.Fatalf("difficulty %v, want Medium", restored.difficulty)
	}
	if restored.board.Grid[0][2] != 4 {
		t.Fatal("user move lost in round trip")
	}
	if restored.board.ResetGrid[0][2] != 0 {
		t.Fatal("reset grid corrupted in round trip")
	}

	elapsed := restored.elapsed()
	if elapsed < 85*time.Second || elapsed > 95*time.Second {
		t.Fatalf("restored elapsed time %v, want ~90s", elapsed)
	}
}

func TestLoadSessionMissingFile(t *testing.T) {
	g := newTestGame(t)
	if err := g.loadSession(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	// The running game survives a failed load.
	if g.playerName != "tester" || g.board == nil {
		t.Fatal("failed load clobbered game state")
	}
}

func TestLoadSessionRejectsCorruptBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	g := newTestGame(t)
	// An unsolvable reset grid: (0,8) admits no digit at all.
	grid, err := sudoku.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for col := 0; col < 8; col++ {
		grid[0][col] = col + 1
	}
	grid[1][8] = 9
	g.board = NewBoard(grid, sudoku.Medium)
	if err := g.saveSession(path); err != nil {
		t.Fatalf("saveSession failed: %v", err)
	}

	fresh := newTestGame(t)
	if err := fresh.loadSession(path); err == nil {
		t.Fatal("expected error for unsolvable saved puzzle")
	}
}
