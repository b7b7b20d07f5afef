package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	env "github.com/muesli/termenv"

	"github.com/dnellessen/terminal-sudoku/internal/sudoku"
)

const sudokuLen = 9

// solveStepInterval paces the solver animation; one search move per tick.
const solveStepInterval = 25 * time.Millisecond

type GameState int

const (
	Playing GameState = iota
	Solving
	Won
	NeedsCorrection
	InMenu
)

// GameModel is the playing screen. It owns the live puzzle and dispatches
// every command to the engine; all rendering state lives here.
type GameModel struct {
	puzzle sudoku.Puzzle
	board  sudoku.Grid
	gen    *sudoku.Generator

	KeyMap   KeyMap
	cursor   sudoku.Coord
	errCells map[sudoku.Coord]bool

	status   string
	statusOK bool

	trace      *sudoku.SolveTrace
	preSolve   sudoku.Grid
	touched    sudoku.Coord
	hasTouched bool

	startTime        time.Time
	elapsedTimeOnWin time.Duration
	width, height    int

	state          GameState
	menuOptions    []string
	selectedOption int

	originalBgColor env.Color
	output          *env.Output
}

type setBackgroundColorMsg struct {
	color env.Color
}

func setBackgroundColor(c env.Color) tea.Cmd {
	return func() tea.Msg {
		return setBackgroundColorMsg{color: c}
	}
}

type solveStepMsg struct{}

func solveStep() tea.Cmd {
	return tea.Tick(solveStepInterval, func(time.Time) tea.Msg {
		return solveStepMsg{}
	})
}

type GameWon struct{}
type GameNeedsCorrection struct{}

func NewGameModel(width, height int, difficulty sudoku.Difficulty, gen *sudoku.Generator) *GameModel {
	if gen == nil {
		gen = sudoku.NewGenerator(nil)
	}
	puzzle := gen.Generate(difficulty)

	return &GameModel{
		puzzle:          puzzle,
		board:           puzzle.Grid.Clone(),
		gen:             gen,
		KeyMap:          Keys,
		errCells:        make(map[sudoku.Coord]bool),
		startTime:       time.Now(),
		width:           width,
		height:          height,
		state:           Playing,
		menuOptions:     []string{"Resume Game", "New Game", "Quit"},
		originalBgColor: env.BackgroundColor(),
		output:          env.DefaultOutput(),
	}
}

func (m GameModel) Init() tea.Cmd {
	return setBackgroundColor(env.RGBColor("#1e1e1e"))
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setBackgroundColorMsg:
		m.output.SetBackgroundColor(msg.color)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case solveStepMsg:
		return m.advanceSolve()

	case GameWon:
		m.state = Won
		m.elapsedTimeOnWin = time.Since(m.startTime)

	case GameNeedsCorrection:
		m.state = NeedsCorrection
	}

	return m, nil
}

func (m GameModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.state == InMenu:
		return m.updateMenu(msg)

	case m.state == Solving:
		// The trace is abandoned by simply not pulling further steps.
		switch {
		case key.Matches(msg, m.KeyMap.Menu):
			m.cancelSolve()
		case key.Matches(msg, m.KeyMap.Quit):
			return m, tea.Sequence(
				setBackgroundColor(m.originalBgColor),
				tea.Quit,
			)
		}
		return m, nil

	case key.Matches(msg, m.KeyMap.Menu):
		m.state = InMenu
		m.selectedOption = 0

	case key.Matches(msg, m.KeyMap.Down):
		m.cursor.Row = (m.cursor.Row + 1) % sudokuLen

	case key.Matches(msg, m.KeyMap.Up):
		m.cursor.Row = (m.cursor.Row - 1 + sudokuLen) % sudokuLen

	case key.Matches(msg, m.KeyMap.Left):
		m.cursor.Col = (m.cursor.Col - 1 + sudokuLen) % sudokuLen

	case key.Matches(msg, m.KeyMap.Right):
		m.cursor.Col = (m.cursor.Col + 1) % sudokuLen

	case key.Matches(msg, m.KeyMap.Number):
		if m.state == Playing || m.state == NeedsCorrection {
			return m, m.setCell(int(msg.String()[0] - '0'))
		}

	case key.Matches(msg, m.KeyMap.Clear):
		if m.state == Playing || m.state == NeedsCorrection {
			return m, m.setCell(0)
		}

	case key.Matches(msg, m.KeyMap.Check):
		if m.state == Playing || m.state == NeedsCorrection {
			return m, m.runCheck()
		}

	case key.Matches(msg, m.KeyMap.Solve):
		if m.state == Playing || m.state == NeedsCorrection {
			return m.startSolve()
		}

	case key.Matches(msg, m.KeyMap.Easy):
		return m.newGame(sudoku.Easy)

	case key.Matches(msg, m.KeyMap.Medium):
		return m.newGame(sudoku.Medium)

	case key.Matches(msg, m.KeyMap.Hard):
		return m.newGame(sudoku.Hard)

	case key.Matches(msg, m.KeyMap.Quit):
		return m, tea.Sequence(
			setBackgroundColor(m.originalBgColor),
			tea.Quit,
		)
	}

	return m, nil
}

func (m GameModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Up):
		m.selectedOption = (m.selectedOption - 1 + len(m.menuOptions)) % len(m.menuOptions)
	case key.Matches(msg, m.KeyMap.Down):
		m.selectedOption = (m.selectedOption + 1) % len(m.menuOptions)
	case key.Matches(msg, m.KeyMap.Menu):
		m.state = Playing
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		switch m.selectedOption {
		case 0: // Resume Game
			m.state = Playing
		case 1: // New Game
			menu := NewMenuModel(m.width, m.height, m.gen)
			return menu, nil
		case 2: // Quit
			return m, tea.Sequence(
				setBackgroundColor(m.originalBgColor),
				tea.Quit,
			)
		}
	}
	return m, nil
}

// setCell writes v at the cursor, surfacing engine rejections in the
// status line instead of crashing.
func (m *GameModel) setCell(v int) tea.Cmd {
	err := m.board.Set(m.cursor.Row, m.cursor.Col, v)
	switch {
	case errors.Is(err, sudoku.ErrCellLocked):
		m.setStatus("that cell is a clue", false)
		return nil
	case err != nil:
		return nil
	}

	delete(m.errCells, m.cursor)
	m.state = Playing
	m.status = ""

	// A full board gets checked without being asked.
	if v != 0 {
		if _, empty := m.board.Empty(); !empty {
			return m.runCheck()
		}
	}
	return nil
}

// runCheck marks rule conflicts and, since the generator guarantees a
// unique solution, any editable cell that disagrees with it.
func (m *GameModel) runCheck() tea.Cmd {
	m.errCells = make(map[sudoku.Coord]bool)

	for coord := range m.board.FindErrors() {
		if !m.board.IsFixed(coord.Row, coord.Col) {
			m.errCells[coord] = true
		}
	}
	for r := 0; r < sudokuLen; r++ {
		for c := 0; c < sudokuLen; c++ {
			if m.board.IsFixed(r, c) {
				continue
			}
			v, _ := m.board.Get(r, c)
			want, _ := m.puzzle.Solution.Get(r, c)
			if v != 0 && v != want {
				m.errCells[sudoku.Coord{Row: r, Col: c}] = true
			}
		}
	}

	switch {
	case len(m.errCells) > 0:
		m.setStatus("the board has mistakes, check the highlighted cells", false)
		return func() tea.Msg { return GameNeedsCorrection{} }
	case m.board.IsComplete():
		return func() tea.Msg { return GameWon{} }
	default:
		m.setStatus("no mistakes so far", true)
		return nil
	}
}

// startSolve hands the live board to a stepwise trace and begins pulling
// one search move per tick.
func (m GameModel) startSolve() (tea.Model, tea.Cmd) {
	m.preSolve = m.board.Clone()
	m.trace = sudoku.NewSolveTrace(m.board)
	m.errCells = make(map[sudoku.Coord]bool)
	m.state = Solving
	m.setStatus("solving... (esc to cancel)", true)
	return m, solveStep()
}

func (m GameModel) advanceSolve() (tea.Model, tea.Cmd) {
	if m.state != Solving || m.trace == nil {
		return m, nil
	}

	step, ok := m.trace.Next()
	if ok {
		m.board = step.Board
		m.touched, m.hasTouched = step.Pos, true
		return m, solveStep()
	}

	m.hasTouched = false
	solved, err := m.trace.Result()
	m.trace = nil
	m.state = Playing
	if err != nil {
		m.board = m.preSolve
		m.setStatus("no solution from current state", false)
		return m, nil
	}
	m.board = solved
	m.setStatus("solved by backtracking", true)
	return m, nil
}

func (m *GameModel) cancelSolve() {
	m.trace = nil
	m.hasTouched = false
	m.board = m.preSolve
	m.state = Playing
	m.setStatus("solve canceled", true)
}

func (m GameModel) newGame(d sudoku.Difficulty) (tea.Model, tea.Cmd) {
	game := NewGameModel(m.width, m.height, d, m.gen)
	game.originalBgColor = m.originalBgColor
	return *game, nil
}

func (m *GameModel) setStatus(s string, ok bool) {
	m.status = s
	m.statusOK = ok
}

func (m GameModel) cellsLeft() int {
	return sudokuLen*sudokuLen - m.board.Clues()
}

func (m GameModel) View() string {
	switch m.state {
	case InMenu:
		return m.renderMenu()
	case Won:
		return m.renderWinScreen()
	default:
		return m.renderGame()
	}
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
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		BorderForeground(lipgloss.Color("#FFD700"))

	textStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00FF00")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF4500")).
		Bold(true).
		Align(lipgloss.Center)

	winMessage := fmt.Sprintf("%s\n\n%s\n\n%s",
		titleStyle.Render("You Win!!!"),
		textStyle.Render(fmt.Sprintf("Time: %02d:%02d", int(m.elapsedTimeOnWin.Minutes()), int(m.elapsedTimeOnWin.Seconds())%60)),
		"Press 'q' to quit, or e/m/H for a new game")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(winMessage))
}

func (m GameModel) renderGame() string {
	boardView := m.renderBoard()
	infoView := m.renderInfo()

	var statusView string
	if m.status != "" {
		if m.statusOK {
			statusView = statusOKStyle.Render(m.status)
		} else {
			statusView = statusErrStyle.Render(m.status)
		}
	}

	mainView := lipgloss.JoinVertical(lipgloss.Center, boardView, infoView, statusView)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, mainView)
}

func (m GameModel) renderBoard() string {
	var boardView string

	for i := 0; i < sudokuLen; i++ {
		row := ""
		for j := 0; j < sudokuLen; j++ {
			coord := sudoku.Coord{Row: i, Col: j}

			value, _ := m.board.Get(i, j)
			cellValue := " "
			if value != 0 {
				cellValue = fmt.Sprintf("%d", value)
			}

			isCursor := m.state != Solving && m.cursor == coord
			isSolver := m.hasTouched && m.touched == coord
			editable := !m.board.IsFixed(i, j)

			row += formatCell(m.errCells[coord], isCursor, isSolver, editable, j, cellValue)
		}
		boardView += formatRow(i, row) + "\n"
	}
	return boardView
}

func (m GameModel) renderInfo() string {
	var elapsedTime time.Duration
	if m.state == Won {
		elapsedTime = m.elapsedTimeOnWin
	} else {
		elapsedTime = time.Since(m.startTime).Round(time.Second)
	}

	info := fmt.Sprintf("Cells left: %d\n", m.cellsLeft())
	info += fmt.Sprintf("Elapsed time: %02d:%02d\n", int(elapsedTime.Minutes()), int(elapsedTime.Seconds())%60)
	info += "\nq quit • esc menu • c check • s solve • e/m/H new game\n"
	info += fmt.Sprintf("\nSudoku - %s\n", m.puzzle.Difficulty)
	info += "\nUse arrow keys to move, numbers to fill, 0/x to clear"
	return infoStyle.Render(info)
}
