package sudoku

import "errors"

// ErrUnsolvable reports that the search exhausted every digit without
// completing the grid. It is an expected outcome for contradictory
// boards, not an internal fault.
var ErrUnsolvable = errors.New("no solution from current state")

// Solve returns the completed grid, trying digits in ascending order so a
// uniquely solvable puzzle always solves to the same result. The caller's
// grid is not modified. Boards whose existing digits already conflict are
// unsolvable without any search.
func Solve(g Grid) (Grid, error) {
	if g.hasConflicts() {
		return Grid{}, ErrUnsolvable
	}
	work := g.Clone()
	if !solve(&work) {
		return Grid{}, ErrUnsolvable
	}
	return work, nil
}

func solve(g *Grid) bool {
	pos, ok := g.Empty()
	if !ok {
		return true
	}
	for v := 1; v <= 9; v++ {
		if g.IsLegalPlacement(pos.Row, pos.Col, v) {
			g.vals[pos.Row][pos.Col] = v
			if solve(g) {
				return true
			}
			g.vals[pos.Row][pos.Col] = 0
		}
	}
	return false
}

// CountSolutions counts completions of g, stopping as soon as limit
// solutions are found. The generator's uniqueness check calls it with
// limit 2: any answer other than 1 means the carve went too far. The
// caller's grid is never modified.
func CountSolutions(g Grid, limit int) int {
	if limit <= 0 || g.hasConflicts() {
		return 0
	}
	work := g.Clone()
	count := 0
	countSolutions(&work, limit, &count)
	return count
}

func countSolutions(g *Grid, limit int, count *int) {
	if *count >= limit {
		return
	}
	pos, ok := g.Empty()
	if !ok {
		*count++
		return
	}
	for v := 1; v <= 9; v++ {
		if g.IsLegalPlacement(pos.Row, pos.Col, v) {
			g.vals[pos.Row][pos.Col] = v
			countSolutions(g, limit, count)
			g.vals[pos.Row][pos.Col] = 0
			if *count >= limit {
				return
			}
		}
	}
}
