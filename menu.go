package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/itacentury/sudoku/sudoku"
)

type MenuModel struct {
	choices []string
	cursor  int
	width   int
	height  int
}

// NewMenuModel builds the difficulty selection menu with the given
// difficulty preselected.
func NewMenuModel(width, height int, selected sudoku.Difficulty) *MenuModel {
	return &MenuModel{
		choices: []string{"Easy", "Medium", "Hard", "Quit"},
		cursor:  int(selected),
		width:   width,
		height:  height,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.choices)-1 {
				return m, tea.Quit
			}
			game := NewGameModel(m.width, m.height, sudoku.Difficulty(m.cursor))
			return game, game.Init()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) View() string {
	menuBgColor := lipgloss.Color("11")
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Background(menuBgColor).
		Bold(true)

	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(menuBgColor).
		Bold(true).
		Render("SUDOKU") + "\n\n"
	s += lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(menuBgColor).
		Render("Select difficulty:") + "\n"
	for i, choice := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
		}
		choiceStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(menuBgColor)
		if m.cursor == i {
			choiceStyle = choiceStyle.
				Foreground(lipgloss.Color("201")).
				Bold(true).
				Background(menuBgColor)
		}
		s += fmt.Sprintf("%s%s\n", cursor, choiceStyle.Render(choice))
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(menuBgColor).
		BorderBackground(menuBgColor).
		Background(menuBgColor).
		Padding(2, 9)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(s))
}
