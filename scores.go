package main

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/charmbracelet/log"
)

type ScoreEntry struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty"`
}

// HighScores is the persistent score table. Scores are solve times in
// seconds, so lower is better.
type HighScores struct {
	Title  string       `json:"title"`
	Scores []ScoreEntry `json:"scores"`
}

func NewHighScores() *HighScores {
	return &HighScores{Title: "Highscores", Scores: []ScoreEntry{}}
}

// LoadHighScores reads the score table from disk. A missing or corrupt
// file yields an empty table, never an error.
func LoadHighScores(filename string) *HighScores {
	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not read high scores", "file", filename, "error", err)
		}
		return NewHighScores()
	}

	var scores HighScores
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Warn("invalid high score file", "file", filename, "error", err)
		return NewHighScores()
	}
	if scores.Title == "" {
		scores.Title = "Highscores"
	}
	scores.sort()
	return &scores
}

// Add inserts a score, keeping the table ordered.
func (h *HighScores) Add(name string, score int, difficulty string) {
	insert := len(h.Scores)
	for i, existing := range h.Scores {
		if score < existing.Score {
			insert = i
			break
		}
	}
	entry := ScoreEntry{Name: name, Score: score, Difficulty: difficulty}
	h.Scores = append(h.Scores[:insert], append([]ScoreEntry{entry}, h.Scores[insert:]...)...)
	h.sort()
}

// Save writes the table as JSON.
func (h *HighScores) Save(filename string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// Top returns up to limit best entries for one difficulty.
func (h *HighScores) Top(difficulty string, limit int) []ScoreEntry {
	var filtered []ScoreEntry
	for _, entry := range h.Scores {
		if entry.Difficulty == difficulty {
			filtered = append(filtered, entry)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score < filtered[j].Score
	})
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// sort orders the table hard, medium, easy, then by ascending score.
func (h *HighScores) sort() {
	order := map[string]int{"hard": 0, "medium": 1, "easy": 2}
	sort.SliceStable(h.Scores, func(i, j int) bool {
		oi, ok := order[h.Scores[i].Difficulty]
		if !ok {
			oi = len(order)
		}
		oj, ok := order[h.Scores[j].Difficulty]
		if !ok {
			oj = len(order)
		}
		if oi != oj {
			return oi < oj
		}
		return h.Scores[i].Score < h.Scores[j].Score
	})
}
