package sudoku

import (
	"errors"
	"fmt"
	"strings"
)

const gridLen = 9

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrInvalidDigit = errors.New("digit out of range")
	ErrCellLocked   = errors.New("cell is a fixed clue")
)

// Coord identifies a cell on the board.
type Coord struct {
	Row, Col int
}

// Grid is a 9x9 sudoku board. Zero values are empty cells. Cells marked
// fixed are puzzle clues and reject writes through Set. Grid has value
// semantics: assigning copies the whole board, so Clone is a plain copy.
type Grid struct {
	vals  [gridLen][gridLen]int
	fixed [gridLen][gridLen]bool
}

func inBounds(r, c int) bool {
	return r >= 0 && r < gridLen && c >= 0 && c < gridLen
}

// Get returns the value at (r, c), 0 meaning empty.
func (g *Grid) Get(r, c int) (int, error) {
	if !inBounds(r, c) {
		return 0, fmt.Errorf("get (%d,%d): %w", r, c, ErrOutOfBounds)
	}
	return g.vals[r][c], nil
}

// Set writes v (0 clears) at (r, c). Clue cells cannot be written.
func (g *Grid) Set(r, c, v int) error {
	if !inBounds(r, c) {
		return fmt.Errorf("set (%d,%d): %w", r, c, ErrOutOfBounds)
	}
	if v < 0 || v > 9 {
		return fmt.Errorf("set (%d,%d)=%d: %w", r, c, v, ErrInvalidDigit)
	}
	if g.fixed[r][c] {
		return fmt.Errorf("set (%d,%d): %w", r, c, ErrCellLocked)
	}
	g.vals[r][c] = v
	return nil
}

// IsFixed reports whether (r, c) is a clue cell. Out-of-bounds
// coordinates are simply not fixed.
func (g *Grid) IsFixed(r, c int) bool {
	return inBounds(r, c) && g.fixed[r][c]
}

// IsLegalPlacement reports whether no other cell in the same row, column
// or 3x3 box holds v. Placing 0 is always legal.
func (g *Grid) IsLegalPlacement(r, c, v int) bool {
	if !inBounds(r, c) || v < 1 || v > 9 {
		return inBounds(r, c) && v == 0
	}
	for i := 0; i < gridLen; i++ {
		if i != c && g.vals[r][i] == v {
			return false
		}
		if i != r && g.vals[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if (br+dr != r || bc+dc != c) && g.vals[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every cell is filled and every row, column
// and box contains 1-9 exactly once.
func (g *Grid) IsComplete() bool {
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			v := g.vals[r][c]
			if v == 0 || !g.IsLegalPlacement(r, c, v) {
				return false
			}
		}
	}
	return true
}

// FindErrors returns the coordinates of filled cells that duplicate a
// digit within their row, column or box. Empty cells are never errors.
func (g *Grid) FindErrors() map[Coord]bool {
	errs := make(map[Coord]bool)
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			if v := g.vals[r][c]; v != 0 && !g.IsLegalPlacement(r, c, v) {
				errs[Coord{r, c}] = true
			}
		}
	}
	return errs
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() Grid {
	return *g
}

// Clues counts the filled cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			if g.vals[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Empty returns the first empty cell in row-major order.
func (g *Grid) Empty() (Coord, bool) {
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			if g.vals[r][c] == 0 {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

// lock marks every filled cell as a clue and unlocks the rest.
func (g *Grid) lock() {
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			g.fixed[r][c] = g.vals[r][c] != 0
		}
	}
}

// hasConflicts reports whether any filled cell duplicates a digit in its
// row, column or box.
func (g *Grid) hasConflicts() bool {
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			if v := g.vals[r][c]; v != 0 && !g.IsLegalPlacement(r, c, v) {
				return true
			}
		}
	}
	return false
}

// Parse builds a grid from 81 digit runes, row-major, '0' or '.' meaning
// empty. Whitespace is ignored. The parsed cells are not locked.
func Parse(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range s {
		switch {
		case r == '.' || (r >= '0' && r <= '9'):
			if i >= gridLen*gridLen {
				return Grid{}, fmt.Errorf("parse: more than 81 cells")
			}
			if r != '.' {
				g.vals[i/gridLen][i%gridLen] = int(r - '0')
			}
			i++
		case r == ' ' || r == '\n' || r == '\t' || r == '\r':
		default:
			return Grid{}, fmt.Errorf("parse: unexpected rune %q", r)
		}
	}
	if i != gridLen*gridLen {
		return Grid{}, fmt.Errorf("parse: got %d cells, want 81", i)
	}
	return g, nil
}

// String renders the grid as 9 rows of 9 digits, empty cells as '0'.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < gridLen; r++ {
		for c := 0; c < gridLen; c++ {
			b.WriteByte(byte('0' + g.vals[r][c]))
		}
		if r < gridLen-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
