package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cellStyle = func(editable bool) lipgloss.Style {
		if editable {
			return lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15"))
		}
		// Clue cells: darker background, dimmer digit.
		return lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("250"))
	}

	cursorCellStyle = func(editable bool) lipgloss.Style {
		if editable {
			return lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("34"))
		}
		return lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("22"))
	}

	errorCellStyle = func(isCursor bool) lipgloss.Style {
		if isCursor {
			return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15"))
		}
		return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15"))
	}

	// The cell the solver touched last while the animation runs.
	solverCellStyle = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).
		Background(lipgloss.Color("220")).Foreground(lipgloss.Color("16")).Bold(true)

	formatCell = func(isError, isCursor, isSolver, editable bool, col int, c string) string {
		var s lipgloss.Style

		switch {
		case isSolver:
			s = solverCellStyle
		case isError:
			s = errorCellStyle(isCursor)
		case isCursor:
			s = cursorCellStyle(editable)
		default:
			s = cellStyle(editable)
		}

		// Vertical borders between groups of 3 cells.
		if col+1 == 3 || col+1 == 6 {
			return s.Render(c) + lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).Margin(0, 1).Render("")
		}

		return s.Render(c)
	}

	formatRow = func(row int, r string) string {
		// Horizontal borders between groups of 3 rows.
		if row+1 == 3 || row+1 == 6 {
			rSize, _ := lipgloss.Size(r)
			border := strings.Repeat("─", (rSize/3)-1)
			return r + "\n" + border + "┼" + "─" + border + "┼" + border
		}
		return r
	}

	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Margin(1, 0, 0, 0)

	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	statusOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
)
