package sudoku

// StepKind distinguishes the two moves a backtracking search makes.
type StepKind int

const (
	Place StepKind = iota
	Retract
)

func (k StepKind) String() string {
	if k == Place {
		return "place"
	}
	return "retract"
}

// Step is one observable move of the search: the cell touched, the value
// placed or cleared, and a snapshot of the whole board afterwards.
type Step struct {
	Pos   Coord
	Old   int
	Value int
	Kind  StepKind
	Board Grid
}

// frame is one level of the search: the empty cell it owns and the last
// digit attempted there (0 before the first attempt).
type frame struct {
	pos   Coord
	tried int
}

// SolveTrace runs the same backtracking search as Solve, paused between
// moves. Each Next call advances by exactly one placement or retraction
// and hands control back, so the consumer owns the pacing. The search
// keeps its own frame stack instead of recursing, which is what lets a
// plain method call suspend and resume it. Dropping a trace early needs
// no cleanup; it holds nothing but this struct.
type SolveTrace struct {
	grid    Grid
	stack   []frame
	started bool
	done    bool
	err     error
}

// NewSolveTrace starts a stepwise solve over a private copy of g.
func NewSolveTrace(g Grid) *SolveTrace {
	return &SolveTrace{grid: g.Clone()}
}

// Next advances the search by one move. It returns false once the search
// has finished: an already-complete grid finishes before the first move,
// and a contradictory one finishes without any. After false, Result
// reports the outcome.
func (t *SolveTrace) Next() (Step, bool) {
	if t.done {
		return Step{}, false
	}
	if !t.started {
		t.started = true
		if t.grid.hasConflicts() {
			t.done, t.err = true, ErrUnsolvable
			return Step{}, false
		}
		pos, ok := t.grid.Empty()
		if !ok {
			t.done = true
			return Step{}, false
		}
		t.stack = append(t.stack, frame{pos: pos})
	}
	for {
		f := &t.stack[len(t.stack)-1]
		if t.grid.vals[f.pos.Row][f.pos.Col] == 0 {
			for v := f.tried + 1; v <= 9; v++ {
				if t.grid.IsLegalPlacement(f.pos.Row, f.pos.Col, v) {
					t.grid.vals[f.pos.Row][f.pos.Col] = v
					f.tried = v
					return Step{Pos: f.pos, Value: v, Kind: Place, Board: t.grid}, true
				}
			}
			// Every digit failed here. Drop the frame and clear the
			// placement one level up; its owner retries from tried+1.
			t.stack = t.stack[:len(t.stack)-1]
			if len(t.stack) == 0 {
				t.done, t.err = true, ErrUnsolvable
				return Step{}, false
			}
			p := t.stack[len(t.stack)-1]
			old := t.grid.vals[p.pos.Row][p.pos.Col]
			t.grid.vals[p.pos.Row][p.pos.Col] = 0
			return Step{Pos: p.pos, Old: old, Kind: Retract, Board: t.grid}, true
		}
		// The last placement held; descend to the next empty cell.
		pos, ok := t.grid.Empty()
		if !ok {
			t.done = true
			return Step{}, false
		}
		t.stack = append(t.stack, frame{pos: pos})
	}
}

// Done reports whether the search has finished.
func (t *SolveTrace) Done() bool {
	return t.done
}

// Board returns a snapshot of the search's current board.
func (t *SolveTrace) Board() Grid {
	return t.grid.Clone()
}

// Result runs any remaining steps and returns the completed grid, or
// ErrUnsolvable when the search exhausted every digit.
func (t *SolveTrace) Result() (Grid, error) {
	for !t.done {
		t.Next()
	}
	if t.err != nil {
		return Grid{}, t.err
	}
	return t.grid.Clone(), nil
}
