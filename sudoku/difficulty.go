package sudoku

import "strings"

// Difficulty is a puzzle hardness tier. Each tier carries a numeric
// rank, a lowercase label, and the number of cells the generator
// removes from a full grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

const defaultCellsToRemove = 35

var difficultyTable = map[Difficulty]struct {
	rank          int
	label         string
	cellsToRemove int
}{
	Easy:   {1, "easy", 20},
	Medium: {2, "medium", 35},
	Hard:   {3, "hard", 50},
}

// ParseDifficulty maps a label to its tier, case-insensitively. Any
// unrecognized label yields Medium.
func ParseDifficulty(label string) Difficulty {
	switch strings.ToLower(label) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

func (d Difficulty) String() string {
	if e, ok := difficultyTable[d]; ok {
		return e.label
	}
	return "medium"
}

// Rank returns the tier's numeric rank, 1 (easy) through 3 (hard).
func (d Difficulty) Rank() int {
	if e, ok := difficultyTable[d]; ok {
		return e.rank
	}
	return difficultyTable[Medium].rank
}

// CellsToRemove returns how many cells the generator blanks out for
// this tier.
func (d Difficulty) CellsToRemove() int {
	if e, ok := difficultyTable[d]; ok {
		return e.cellsToRemove
	}
	return defaultCellsToRemove
}
