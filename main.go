package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/itacentury/sudoku/sudoku"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku [difficulty]",
	Short: "Play Sudoku in the terminal",
	Long: `A terminal Sudoku game.

The optional difficulty argument is one of easy, medium or hard
(case-insensitive) and preselects that entry in the menu. It defaults
to medium.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	difficulty := sudoku.Medium
	if len(args) == 1 {
		difficulty = sudoku.ParseDifficulty(args[0])
	}

	p := tea.NewProgram(NewMenuModel(0, 0, difficulty), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
