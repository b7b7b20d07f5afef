package sudoku

import (
	"math/rand"
	"time"
)

// Generator builds puzzles with a unique solution. The random source is
// injectable so tests can generate reproducible puzzles from a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator backed by rng, or a time-seeded source
// when rng is nil.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds a fully solved grid by randomized backtracking, then
// carves cells out while the puzzle keeps exactly one solution, stopping
// at the difficulty's clue target or as close to it as uniqueness allows.
func (g *Generator) Generate(d Difficulty) Puzzle {
	var solution Grid
	for !g.fill(&solution, 0) {
		// Only reachable with a broken legality check; start over.
		solution = Grid{}
	}

	puzzle := solution.Clone()
	g.carve(&puzzle, d.TargetClues())
	puzzle.lock()

	return Puzzle{Grid: puzzle, Solution: solution, Difficulty: d}
}

// fill completes the grid from cell index pos onward, trying digits in a
// freshly shuffled order at every empty cell.
func (g *Generator) fill(grid *Grid, pos int) bool {
	if pos == gridLen*gridLen {
		return true
	}
	r, c := pos/gridLen, pos%gridLen
	if grid.vals[r][c] != 0 {
		return g.fill(grid, pos+1)
	}
	for _, n := range g.rng.Perm(gridLen) {
		v := n + 1
		if grid.IsLegalPlacement(r, c, v) {
			grid.vals[r][c] = v
			if g.fill(grid, pos+1) {
				return true
			}
			grid.vals[r][c] = 0
		}
	}
	return false
}

// carve zeroes cells in random order, keeping a removal only when the
// board still has exactly one completion. Each cell is tried once per
// pass; a removal that breaks uniqueness is restored and the cell left
// alone for the rest of the pass.
func (g *Generator) carve(grid *Grid, targetClues int) {
	positions := g.rng.Perm(gridLen * gridLen)
	for _, pos := range positions {
		if grid.Clues() <= targetClues {
			return
		}
		r, c := pos/gridLen, pos%gridLen
		if grid.vals[r][c] == 0 {
			continue
		}
		backup := grid.vals[r][c]
		grid.vals[r][c] = 0
		if CountSolutions(*grid, 2) != 1 {
			grid.vals[r][c] = backup
		}
	}
}
