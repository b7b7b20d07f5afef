package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic example puzzle and its unique solution, used as a fixture
// across the package tests.
const (
	fixturePuzzle = `
		530070000
		600195000
		098000060
		800060003
		400803001
		700020006
		060000280
		000419005
		000080079`

	fixtureSolution = `
		534678912
		672195348
		198342567
		859761423
		426853791
		713924856
		961537284
		287419635
		345286179`
)

func mustParse(t *testing.T, s string) Grid {
	t.Helper()
	g, err := Parse(s)
	require.NoError(t, err)
	return g
}

func TestGridSetGet(t *testing.T) {
	var g Grid

	require.NoError(t, g.Set(0, 0, 5))
	v, err := g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	require.NoError(t, g.Set(0, 0, 0))
	v, err = g.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestGridSetErrors(t *testing.T) {
	t.Run("out of bounds", func(t *testing.T) {
		var g Grid
		assert.ErrorIs(t, g.Set(9, 0, 1), ErrOutOfBounds)
		assert.ErrorIs(t, g.Set(0, -1, 1), ErrOutOfBounds)
		_, err := g.Get(-1, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		_, err = g.Get(0, 9)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("invalid digit", func(t *testing.T) {
		var g Grid
		assert.ErrorIs(t, g.Set(0, 0, 10), ErrInvalidDigit)
		assert.ErrorIs(t, g.Set(0, 0, -1), ErrInvalidDigit)
	})

	t.Run("locked clue cell", func(t *testing.T) {
		g := mustParse(t, fixturePuzzle)
		g.lock()
		assert.ErrorIs(t, g.Set(0, 0, 1), ErrCellLocked)
		assert.True(t, g.IsFixed(0, 0))
		// Empty cells stay writable.
		assert.False(t, g.IsFixed(0, 2))
		assert.NoError(t, g.Set(0, 2, 4))
	})
}

func TestIsLegalPlacement(t *testing.T) {
	g := mustParse(t, fixturePuzzle)

	t.Run("row duplicate", func(t *testing.T) {
		// (0,0)=5, so another 5 anywhere in row 0 is illegal.
		assert.False(t, g.IsLegalPlacement(0, 2, 5))
	})

	t.Run("column duplicate", func(t *testing.T) {
		// (1,0)=6 blocks 6 in column 0.
		assert.False(t, g.IsLegalPlacement(4, 0, 6))
	})

	t.Run("box duplicate", func(t *testing.T) {
		// (2,1)=9 blocks 9 in the top-left box.
		assert.False(t, g.IsLegalPlacement(0, 2, 9))
	})

	t.Run("legal digit", func(t *testing.T) {
		assert.True(t, g.IsLegalPlacement(0, 2, 4))
	})

	t.Run("zero always legal", func(t *testing.T) {
		assert.True(t, g.IsLegalPlacement(0, 0, 0))
		assert.True(t, g.IsLegalPlacement(8, 8, 0))
	})

	t.Run("cell itself is excluded", func(t *testing.T) {
		// (0,0) already holds 5; re-asserting it must be legal.
		assert.True(t, g.IsLegalPlacement(0, 0, 5))
	})
}

func TestIsComplete(t *testing.T) {
	solution := mustParse(t, fixtureSolution)
	assert.True(t, solution.IsComplete())

	t.Run("false while any cell is empty", func(t *testing.T) {
		g := solution.Clone()
		require.NoError(t, g.Set(4, 4, 0))
		assert.False(t, g.IsComplete())
	})

	t.Run("false for a filled grid with duplicates", func(t *testing.T) {
		g := solution.Clone()
		v, err := g.Get(0, 1)
		require.NoError(t, err)
		require.NoError(t, g.Set(0, 0, v))
		assert.False(t, g.IsComplete())
	})

	t.Run("false for the empty grid", func(t *testing.T) {
		var g Grid
		assert.False(t, g.IsComplete())
	})
}

func TestFindErrors(t *testing.T) {
	t.Run("clean grid has none", func(t *testing.T) {
		g := mustParse(t, fixtureSolution)
		assert.Empty(t, g.FindErrors())
	})

	t.Run("duplicate pair is reported from both sides", func(t *testing.T) {
		var g Grid
		require.NoError(t, g.Set(0, 0, 5))
		require.NoError(t, g.Set(0, 1, 5))
		errs := g.FindErrors()
		assert.True(t, errs[Coord{0, 0}])
		assert.True(t, errs[Coord{0, 1}])
		assert.Len(t, errs, 2)
	})

	t.Run("empty cells are never errors", func(t *testing.T) {
		var g Grid
		require.NoError(t, g.Set(0, 0, 5))
		assert.Empty(t, g.FindErrors())
	})
}

func TestClone(t *testing.T) {
	g := mustParse(t, fixturePuzzle)
	clone := g.Clone()

	require.NoError(t, clone.Set(0, 2, 4))

	v, err := g.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, v, "mutating the clone must not touch the original")

	v, err = clone.Get(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestClues(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.Clues())

	puzzle := mustParse(t, fixturePuzzle)
	assert.Equal(t, 30, puzzle.Clues())

	solution := mustParse(t, fixtureSolution)
	assert.Equal(t, 81, solution.Clues())
}

func TestEmpty(t *testing.T) {
	t.Run("row-major order", func(t *testing.T) {
		g := mustParse(t, fixturePuzzle)
		pos, ok := g.Empty()
		require.True(t, ok)
		assert.Equal(t, Coord{0, 2}, pos)
	})

	t.Run("full grid has none", func(t *testing.T) {
		g := mustParse(t, fixtureSolution)
		_, ok := g.Empty()
		assert.False(t, ok)
	})
}

func TestParseString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		g := mustParse(t, fixturePuzzle)
		again, err := Parse(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, again)
	})

	t.Run("dots mean empty", func(t *testing.T) {
		g, err := Parse("53..7...." +
			"6..195..." +
			".98....6." +
			"8...6...3" +
			"4..8.3..1" +
			"7...2...6" +
			".6....28." +
			"...419..5" +
			"....8..79")
		require.NoError(t, err)
		assert.Equal(t, mustParse(t, fixturePuzzle), g)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := Parse("123")
		assert.Error(t, err)
	})

	t.Run("too long", func(t *testing.T) {
		g := mustParse(t, fixtureSolution)
		_, err := Parse(g.String() + "1")
		assert.Error(t, err)
	})

	t.Run("bad rune", func(t *testing.T) {
		_, err := Parse("a23456789")
		assert.Error(t, err)
	})
}
