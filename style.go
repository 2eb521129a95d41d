package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellState gathers everything that influences how a single cell is
// styled.
type cellState struct {
	isError       bool
	isCursor      bool
	isHighlighted bool
	modifiable    bool
}

var (
	cellStyle = func(modifiable bool) lipgloss.Style {
		if modifiable {
			return lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")) // Modifiable cells: light gray background, white text
		}
		return lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("236")) // Non-modifiable cells: dark gray background
	}

	cursorCellStyle = func(modifiable bool) lipgloss.Style {
		if modifiable {
			return lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("34")) // Modifiable cell with cursor: green background
		}
		return lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("22")) // Non-modifiable cell with cursor: dark green background
	}

	errorCellStyle = func(isCursor bool) lipgloss.Style {
		if isCursor {
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15"))
		}
		return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15"))
	}

	// Cells holding the highlighted number: blue background.
	highlightCellStyle = lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("27")).
				Foreground(lipgloss.Color("15"))

	formatCell = func(cell cellState, col int, c string) string {
		var s lipgloss.Style

		switch {
		case cell.isError:
			s = errorCellStyle(cell.isCursor)
		case cell.isCursor:
			s = cursorCellStyle(cell.modifiable)
		case cell.isHighlighted:
			s = highlightCellStyle
		default:
			s = cellStyle(cell.modifiable)
		}

		// Add vertical borders between groups of 3 cells
		if col+1 == 3 || col+1 == 6 {
			return s.Render(c) + lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).Margin(0, 1).Render("")
		}

		return s.Render(c)
	}

	formatRow = func(row int, r string) string {
		// Add horizontal borders between groups of 3 rows
		if row+1 == 3 || row+1 == 6 {
			rSize, _ := lipgloss.Size(r)
			border := strings.Repeat("─", (rSize/3)-1)
			return r + "\n" + border + "┼" + "─" + border + "┼" + border
		}
		return r
	}

	// Style for the info text at the bottom
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Margin(1, 0, 0, 0)

	errorTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	aiNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true)

	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("39"))

	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("#FFD700")) // Gold border

	winTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")). // Green text for the time
			Bold(true)

	winTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4500")). // Orange text for the title
			Bold(true).
			Align(lipgloss.Center)
)
