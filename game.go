package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/itacentury/sudoku/sudoku"
)

type GameState int

const (
	WaitingForName GameState = iota
	Playing
	Won
	NeedsCorrection
	InMenu
	PromptingPath
)

type fileAction int

const (
	saveAction fileAction = iota
	loadAction
)

const (
	highScoresFile  = "highscores.json"
	defaultSavePath = "sudoku_save.json"
	aiMoveInterval  = 250 * time.Millisecond
)

type GameModel struct {
	board          *Board
	solution       sudoku.Grid
	KeyMap         KeyMap
	errCoordinates map[coordinate]bool
	startTime      time.Time
	pausedFor      time.Duration
	pauseStart     time.Time
	width, height  int
	difficulty     sudoku.Difficulty
	Err            error
	state          GameState
	menuOptions    []string
	selectedOption int
	elapsedOnWin   time.Duration
	playerName     string
	nameInput      textinput.Model
	pathInput      textinput.Model
	pendingFile    fileAction
	ai             *aiPlayer
	aiActive       bool
	scores         *HighScores
}

type GameWon struct{}

// GameNeedsCorrection carries the cells that differ from the solution.
type GameNeedsCorrection struct {
	wrong []coordinate
}

type aiTickMsg struct{}

func aiTick() tea.Cmd {
	return tea.Tick(aiMoveInterval, func(time.Time) tea.Msg {
		return aiTickMsg{}
	})
}

func NewGameModel(width, height int, difficulty sudoku.Difficulty) *GameModel {
	m := &GameModel{
		KeyMap:         Keys,
		errCoordinates: make(map[coordinate]bool),
		width:          width,
		height:         height,
		difficulty:     difficulty,
		state:          WaitingForName,
		menuOptions:    []string{"Resume Game", "New Game", "Quit"},
		ai:             newAIPlayer(),
		scores:         LoadHighScores(highScoresFile),
	}

	gen, err := sudoku.NewGenerator(difficulty)
	if err != nil {
		m.Err = err
		return m
	}
	grid, err := gen.Generate()
	if err != nil {
		m.Err = err
		return m
	}
	m.board = NewBoard(grid, difficulty)

	// The generator hands over only the puzzle; recover the solution by
	// solving a copy.
	solver, err := sudoku.NewSolver(grid)
	if err != nil || !solver.Solve() {
		m.Err = sudoku.ErrGenerationFailed
		return m
	}
	m.solution = solver.Solution()

	ni := textinput.New()
	ni.Placeholder = "player"
	ni.CharLimit = 24
	ni.Focus()
	m.nameInput = ni

	pi := textinput.New()
	pi.Placeholder = defaultSavePath
	pi.CharLimit = 128
	m.pathInput = pi

	return m
}

func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Err != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case WaitingForName:
			return m.updateNamePrompt(msg)
		case PromptingPath:
			return m.updatePathPrompt(msg)
		case InMenu:
			return m.updateMenu(msg)
		}
		return m.updateGame(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case aiTickMsg:
		return m.updateAI()

	case GameWon:
		m.state = Won
		m.aiActive = false
		m.elapsedOnWin = m.elapsed()
		m.recordScore()

	case GameNeedsCorrection:
		m.state = NeedsCorrection
		m.aiActive = false
		m.errCoordinates = make(map[coordinate]bool)
		for _, c := range msg.wrong {
			m.errCoordinates[c] = true
		}
	}

	return m, nil
}

func (m GameModel) updateNamePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.playerName = strings.TrimSpace(m.nameInput.Value())
		if m.playerName == "" {
			m.playerName = "player"
		}
		m.state = Playing
		m.startTime = time.Now()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m GameModel) updatePathPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			path = defaultSavePath
		}
		m.state = Playing
		m.resumeTimer()
		if m.pendingFile == saveAction {
			if err := m.saveSession(path); err != nil {
				log.Error("could not save game", "path", path, "error", err)
			}
		} else {
			if err := m.loadSession(path); err != nil {
				log.Error("could not load game", "path", path, "error", err)
			}
		}
		return m, nil
	case "esc":
		m.state = Playing
		m.resumeTimer()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m GameModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Up):
		m.selectedOption = (m.selectedOption - 1 + len(m.menuOptions)) % len(m.menuOptions)
	case key.Matches(msg, m.KeyMap.Down):
		m.selectedOption = (m.selectedOption + 1) % len(m.menuOptions)
	case msg.String() == "enter":
		switch m.selectedOption {
		case 0: // Resume Game
			m.state = Playing
			m.resumeTimer()
			return m, nil
		case 1: // New Game
			return NewMenuModel(m.width, m.height, m.difficulty), nil
		case 2: // Quit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m GameModel) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Menu):
		m.state = InMenu
		m.pauseStart = time.Now()

	case key.Matches(msg, m.KeyMap.Up):
		m.board.CursorUp()

	case key.Matches(msg, m.KeyMap.Down):
		m.board.CursorDown()

	case key.Matches(msg, m.KeyMap.Left):
		m.board.CursorLeft()

	case key.Matches(msg, m.KeyMap.Right):
		m.board.CursorRight()

	case key.Matches(msg, m.KeyMap.Number):
		if m.state == Playing || m.state == NeedsCorrection {
			return m, m.place(int(msg.String()[0] - '0'))
		}

	case key.Matches(msg, m.KeyMap.Clear):
		if m.board.Set(0) {
			delete(m.errCoordinates, m.board.Cursor())
			m.state = Playing
		}

	case key.Matches(msg, m.KeyMap.Reset):
		m.board.Reset()
		m.errCoordinates = make(map[coordinate]bool)
		m.state = Playing

	case key.Matches(msg, m.KeyMap.Check):
		return m, m.check()

	case key.Matches(msg, m.KeyMap.HighlightUp):
		m.board.IncrHighlighted()

	case key.Matches(msg, m.KeyMap.HighlightDown):
		m.board.DecrHighlighted()

	case key.Matches(msg, m.KeyMap.Save):
		if m.state == Playing {
			m.state = PromptingPath
			m.pendingFile = saveAction
			m.pauseStart = time.Now()
			m.pathInput.SetValue("")
			m.pathInput.Focus()
		}

	case key.Matches(msg, m.KeyMap.Load):
		if m.state == Playing {
			m.state = PromptingPath
			m.pendingFile = loadAction
			m.pauseStart = time.Now()
			m.pathInput.SetValue("")
			m.pathInput.Focus()
		}

	case key.Matches(msg, m.KeyMap.AI):
		m.aiActive = !m.aiActive
		if m.aiActive {
			return m, aiTick()
		}

	case key.Matches(msg, m.KeyMap.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// updateAI feeds one AI-computed action through the regular game logic,
// then schedules the next tick while the AI stays engaged.
func (m GameModel) updateAI() (tea.Model, tea.Cmd) {
	if !m.aiActive || m.state != Playing {
		return m, nil
	}

	move := m.ai.calcMove(m.board)
	switch move {
	case moveUp:
		m.board.CursorUp()
	case moveDown:
		m.board.CursorDown()
	case moveLeft:
		m.board.CursorLeft()
	case moveRight:
		m.board.CursorRight()
	case moveCheck:
		m.aiActive = false
		return m, m.check()
	default:
		return m, tea.Batch(m.place(int(move[0]-'0')), aiTick())
	}
	return m, aiTick()
}

// place writes a digit at the cursor; once the board is full the
// solution is checked automatically.
func (m *GameModel) place(value int) tea.Cmd {
	if !m.board.Set(value) {
		return nil
	}
	delete(m.errCoordinates, m.board.Cursor())
	if m.board.Grid.CountZeros() == 0 {
		return m.check()
	}
	return nil
}

// check validates the whole grid. Cells differing from the solution are
// reported so they can be highlighted.
func (m GameModel) check() tea.Cmd {
	grid := m.board.Grid
	solution := m.solution
	return func() tea.Msg {
		if sudoku.IsValidSolution(grid) {
			return GameWon{}
		}
		var wrong []coordinate
		for i := range grid {
			for j := range grid[i] {
				if grid[i][j] != 0 && grid[i][j] != solution[i][j] {
					wrong = append(wrong, coordinate{i, j})
				}
			}
		}
		return GameNeedsCorrection{wrong: wrong}
	}
}

func (m *GameModel) recordScore() {
	score := int(m.elapsedOnWin.Seconds())
	m.scores.Add(m.playerName, score, m.difficulty.String())
	if err := m.scores.Save(highScoresFile); err != nil {
		log.Error("could not save high scores", "error", err)
	}
}

func (m *GameModel) resumeTimer() {
	if !m.pauseStart.IsZero() {
		m.pausedFor += time.Since(m.pauseStart)
		m.pauseStart = time.Time{}
	}
}

func (m GameModel) elapsed() time.Duration {
	paused := m.pausedFor
	if !m.pauseStart.IsZero() {
		paused += time.Since(m.pauseStart)
	}
	return time.Since(m.startTime) - paused
}

func (m GameModel) View() string {
	if m.Err != nil {
		msg := errorTextStyle.Render(fmt.Sprintf("could not start game: %v", m.Err)) +
			"\n\nPress any key to exit."
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	switch m.state {
	case WaitingForName:
		return m.renderNamePrompt()
	case PromptingPath:
		return m.renderPathPrompt()
	case InMenu:
		return m.renderMenu()
	case Won:
		return m.renderWinScreen()
	default:
		return m.renderGame()
	}
}

func (m GameModel) renderNamePrompt() string {
	prompt := promptBoxStyle.Render(
		"Enter your name:\n\n" + m.nameInput.View() + "\n\nPress enter to start",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
}

func (m GameModel) renderPathPrompt() string {
	title := "Save game to:"
	if m.pendingFile == loadAction {
		title = "Load game from:"
	}
	prompt := promptBoxStyle.Render(
		title + "\n\n" + m.pathInput.View() + "\n\nenter confirm • esc cancel",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
}

func (m GameModel) renderMenu() string {
	var s strings.Builder
	s.WriteString("Menu\n\n")
	for i, option := range m.menuOptions {
		if i == m.selectedOption {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(option + "\n")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s.String())
}

func (m GameModel) renderWinScreen() string {
	minutes := int(m.elapsedOnWin.Minutes())
	seconds := int(m.elapsedOnWin.Seconds()) % 60

	var top strings.Builder
	for i, entry := range m.scores.Top(m.difficulty.String(), 5) {
		top.WriteString(fmt.Sprintf("%d. %-12s %4ds\n",
			i+1, shortenString(entry.Name, 12), entry.Score))
	}

	winMessage := fmt.Sprintf("%s\n\n%s\n\n%s\n%s\n%s",
		winTitleStyle.Render("You Win!!!"),
		winTimeStyle.Render(fmt.Sprintf("Time: %02d:%02d", minutes, seconds)),
		fmt.Sprintf("Best times (%s):", m.difficulty),
		top.String(),
		"Press 'q' to quit or 'm' for menu")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		winBoxStyle.Render(winMessage))
}

func (m GameModel) renderGame() string {
	boardView := m.renderBoard()
	infoView := m.renderInfo()

	var statusView string
	switch {
	case m.state == NeedsCorrection:
		statusView = errorTextStyle.Render("The solution is incorrect. Check the highlighted cells and try again.")
	case m.aiActive:
		statusView = aiNoticeStyle.Render("AI player is solving...")
	}

	mainView := lipgloss.JoinVertical(lipgloss.Center, boardView, infoView, statusView)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, mainView)
}

func (m GameModel) renderBoard() string {
	size := m.board.Grid.Size()
	cursor := m.board.Cursor()
	var boardView string

	for i := 0; i < size; i++ {
		row := ""
		for j := 0; j < size; j++ {
			value := m.board.Grid[i][j]
			cellValue := " "
			if value != 0 {
				cellValue = fmt.Sprintf("%d", value)
			}

			cell := cellState{
				isError:       m.errCoordinates[coordinate{i, j}],
				isCursor:      cursor.row == i && cursor.col == j,
				isHighlighted: value != 0 && value == m.board.Highlighted(),
				modifiable:    !m.board.IsFixed(i, j),
			}
			row += formatCell(cell, j, cellValue)
		}
		boardView += formatRow(i, row) + "\n"
	}
	return boardView
}

func (m GameModel) renderInfo() string {
	var elapsedTime time.Duration
	if m.state == Won {
		elapsedTime = m.elapsedOnWin
	} else {
		elapsedTime = m.elapsed().Round(time.Second)
	}

	info := fmt.Sprintf("Player: %s\n", shortenString(m.playerName, 20))
	info += fmt.Sprintf("Cells left: %d\n", m.board.Grid.CountZeros())
	info += fmt.Sprintf("Elapsed time: %02d:%02d\n", int(elapsedTime.Minutes()), int(elapsedTime.Seconds())%60)
	if h := m.board.Highlighted(); h != 0 {
		info += fmt.Sprintf("Highlighting: %d\n", h)
	}
	info += "\nq quit • m menu • r reset • c check • s save • l load • a ai\n"
	info += fmt.Sprintf("\nSudoku - %s\n", m.difficulty)
	info += "\nUse arrow keys to move, numbers to fill, +/- to highlight"
	return infoStyle.Render(info)
}
