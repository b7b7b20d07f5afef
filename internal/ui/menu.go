package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dnellessen/terminal-sudoku/internal/sudoku"
)

// MenuModel is the difficulty selection screen shown at startup and after
// "New Game".
type MenuModel struct {
	gen     *sudoku.Generator
	choices []string
	cursor  int
	width   int
	height  int
}

func NewMenuModel(width, height int, gen *sudoku.Generator) *MenuModel {
	if gen == nil {
		gen = sudoku.NewGenerator(nil)
	}
	return &MenuModel{
		gen:     gen,
		choices: []string{"Easy", "Medium", "Hard", "Quit"},
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
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.choices)-1 {
				return m, tea.Quit
			}
			game := NewGameModel(m.width, m.height, sudoku.Difficulty(m.cursor), m.gen)
			return game, game.Init()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("201")).
		Bold(true)

	s := titleStyle.Render("TERMINAL SUDOKU") + "\n\n"
	s += "Select difficulty:\n"
	for i, choice := range m.choices {
		cursor := " "
		line := choice
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
			line = selectedStyle.Render(choice)
		}
		s += fmt.Sprintf("%s %s\n", cursor, line)
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 6)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(s))
}
