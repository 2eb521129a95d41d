package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/itacentury/sudoku/sudoku"
)

// savedSession is the on-disk representation of a game in progress.
// Times are kept as Unix seconds so saves stay portable.
type savedSession struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	StartTime  int64  `json:"start_time"`
	SavedTime  int64  `json:"saved_time"`
	Board      *Board `json:"board"`
}

// saveSession writes the current game to path.
func (m *GameModel) saveSession(path string) error {
	session := savedSession{
		Name:       m.playerName,
		Difficulty: m.difficulty.String(),
		StartTime:  m.startTime.Add(m.pausedFor).Unix(),
		SavedTime:  time.Now().Unix(),
		Board:      m.board,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// loadSession restores a game from path. The timer continues from the
// saved elapsed time, ignoring however long the save sat on disk.
func (m *GameModel) loadSession(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}

	var session savedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("decoding session: %w", err)
	}
	if session.Board == nil || session.Board.Grid == nil {
		return fmt.Errorf("session has no board")
	}

	// Re-solve the restored puzzle before touching any state, so a bad
	// file leaves the running game intact.
	solver, err := sudoku.NewSolver(session.Board.ResetGrid)
	if err != nil {
		return fmt.Errorf("restoring board: %w", err)
	}
	if !solver.Solve() {
		return fmt.Errorf("restoring board: saved puzzle is unsolvable")
	}

	m.playerName = session.Name
	m.difficulty = sudoku.ParseDifficulty(session.Difficulty)
	m.board = NewBoard(session.Board.ResetGrid, m.difficulty)
	m.board.Grid = session.Board.Grid
	m.solution = solver.Solution()
	m.errCoordinates = make(map[coordinate]bool)

	elapsed := time.Duration(session.SavedTime-session.StartTime) * time.Second
	if elapsed < 0 {
		elapsed = 0
	}
	m.startTime = time.Now().Add(-elapsed)
	m.pausedFor = 0
	m.pauseStart = time.Time{}

	return nil
}
