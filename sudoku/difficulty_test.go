package sudoku

import "testing"

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		label string
		want  Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"EASY", Easy},
		{"Hard", Hard},
		{"", Medium},
		{"impossible", Medium},
	}

	for _, tc := range cases {
		if got := ParseDifficulty(tc.label); got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}

func TestDifficultyTable(t *testing.T) {
	cases := []struct {
		diff    Difficulty
		rank    int
		label   string
		removed int
	}{
		{Easy, 1, "easy", 20},
		{Medium, 2, "medium", 35},
		{Hard, 3, "hard", 50},
	}

	for _, tc := range cases {
		if got := tc.diff.Rank(); got != tc.rank {
			t.Errorf("%v.Rank() = %d, want %d", tc.diff, got, tc.rank)
		}
		if got := tc.diff.String(); got != tc.label {
			t.Errorf("Difficulty.String() = %q, want %q", got, tc.label)
		}
		if got := tc.diff.CellsToRemove(); got != tc.removed {
			t.Errorf("%v.CellsToRemove() = %d, want %d", tc.diff, got, tc.removed)
		}
	}
}

func TestDifficultyUnknownDefaults(t *testing.T) {
	unknown := Difficulty(42)
	if got := unknown.CellsToRemove(); got != 35 {
		t.Errorf("unknown difficulty removes %d cells, want 35", got)
	}
	if got := unknown.String(); got != "medium" {
		t.Errorf("unknown difficulty label %q, want %q", got, "medium")
	}
}
