package ui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnellessen/terminal-sudoku/internal/sudoku"
)

func TestMenuSelectsDifficulty(t *testing.T) {
	gen := sudoku.NewGenerator(rand.New(rand.NewSource(3)))
	menu := *NewMenuModel(80, 24, gen)

	// Down once lands on Medium, enter starts a game there.
	model, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	menu = model.(MenuModel)
	model, _ = menu.Update(tea.KeyMsg{Type: tea.KeyEnter})

	game, ok := model.(*GameModel)
	require.True(t, ok, "enter must hand over to the game")
	assert.Equal(t, sudoku.Medium, game.puzzle.Difficulty)
}

func TestMenuQuit(t *testing.T) {
	menu := *NewMenuModel(80, 24, nil)
	for i := 0; i < 3; i++ {
		model, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
		menu = model.(MenuModel)
	}
	assert.Equal(t, len(menu.choices)-1, menu.cursor)

	_, cmd := menu.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMenuCursorBounds(t *testing.T) {
	menu := *NewMenuModel(80, 24, nil)

	model, _ := menu.Update(tea.KeyMsg{Type: tea.KeyUp})
	menu = model.(MenuModel)
	assert.Equal(t, 0, menu.cursor, "cursor stops at the top")

	for i := 0; i < 10; i++ {
		model, _ = menu.Update(tea.KeyMsg{Type: tea.KeyDown})
		menu = model.(MenuModel)
	}
	assert.Equal(t, len(menu.choices)-1, menu.cursor, "cursor stops at the bottom")
}

func TestMenuView(t *testing.T) {
	menu := *NewMenuModel(80, 24, nil)
	view := menu.View()
	assert.Contains(t, view, "Easy")
	assert.Contains(t, view, "Hard")
}
