package sudoku

// Difficulty selects how many clues a generated puzzle keeps.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return "Unknown"
}

// ParseDifficulty maps a difficulty name (case-sensitive lowercase, as
// typed on the command line) to its value.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return Medium, false
}

// TargetClues is the number of clues carving aims to leave on the board.
// The values are tuning policy, not contract; they only have to stay
// monotonic (easier keeps more clues).
func (d Difficulty) TargetClues() int {
	switch d {
	case Easy:
		return 46
	case Hard:
		return 28
	default:
		return 36
	}
}

// Puzzle pairs a carved board (remaining clues locked) with its unique
// solution. Replaced wholesale when the player switches difficulty.
type Puzzle struct {
	Grid       Grid
	Solution   Grid
	Difficulty Difficulty
}
