package main

import (
	"math/rand"
	"strconv"
	"time"
)

// Moves the AI can emit. Digit moves are the digit itself ("1".."9").
const (
	moveUp    = "up"
	moveDown  = "down"
	moveLeft  = "left"
	moveRight = "right"
	moveCheck = "check"
)

// aiPlayer plays the board one keypress at a time: it walks the cursor
// to the nearest empty cell and drops in a random digit that fits.
type aiPlayer struct {
	rng *rand.Rand
}

func newAIPlayer() *aiPlayer {
	return &aiPlayer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// calcMove returns the AI's next action for the given board: a cursor
// step toward the nearest empty cell, a digit to place, or a check
// request when no digit fits (or nothing is left to fill).
func (a *aiPlayer) calcMove(b *Board) string {
	row, col, found := a.findNearestEmptyCell(b)
	if !found {
		return moveCheck
	}

	cursor := b.Cursor()
	if cursor.col != col || cursor.row != row {
		switch {
		case col > cursor.col:
			return moveRight
		case col < cursor.col:
			return moveLeft
		case row > cursor.row:
			return moveDown
		default:
			return moveUp
		}
	}

	size := b.Grid.Size()
	for _, n := range a.rng.Perm(size) {
		num := n + 1
		if a.isValid(b, row, col, num) {
			b.SetHighlighted(num)
			return strconv.Itoa(num)
		}
	}

	return moveCheck
}

// findNearestEmptyCell picks the empty cell with the smallest Manhattan
// distance from the cursor.
func (a *aiPlayer) findNearestEmptyCell(b *Board) (int, int, bool) {
	cursor := b.Cursor()
	size := b.Grid.Size()

	best := -1
	bestRow, bestCol := 0, 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if b.Grid[row][col] != 0 {
				continue
			}
			distance := abs(cursor.col-col) + abs(cursor.row-row)
			if best == -1 || distance < best {
				best = distance
				bestRow, bestCol = row, col
			}
		}
	}
	return bestRow, bestCol, best != -1
}

func (a *aiPlayer) isValid(b *Board, row, col, num int) bool {
	size := b.Grid.Size()
	for i := 0; i < size; i++ {
		if b.Grid[row][i] == num || b.Grid[i][col] == num {
			return false
		}
	}
	sub := 1
	for sub*sub < size {
		sub++
	}
	startRow, startCol := row-row%sub, col-col%sub
	for r := startRow; r < startRow+sub; r++ {
		for c := startCol; c < startCol+sub; c++ {
			if b.Grid[r][c] == num {
				return false
			}
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
