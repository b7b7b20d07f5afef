package main

import (
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dnellessen/terminal-sudoku/internal/sudoku"
	"github.com/dnellessen/terminal-sudoku/internal/ui"
)

var (
	difficultyFlag string
	seedFlag       int64
)

var rootCmd = &cobra.Command{
	Use:   "terminal-sudoku",
	Short: "Play sudoku in your terminal",
	Long: "A terminal sudoku game: generated puzzles with a unique solution,\n" +
		"keyboard navigation, mistake checking and an animated backtracking solver.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen := newGenerator()

		var model tea.Model
		if cmd.Flags().Changed("difficulty") {
			d, ok := sudoku.ParseDifficulty(difficultyFlag)
			if !ok {
				return fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", difficultyFlag)
			}
			model = ui.NewGameModel(0, 0, d, gen)
		} else {
			model = ui.NewMenuModel(0, 0, gen)
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&difficultyFlag, "difficulty", "d", "medium",
		"start directly at this difficulty (easy, medium, hard)")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0,
		"seed for puzzle generation, 0 means random")
}

// newGenerator builds a puzzle generator, seeded when --seed is given so
// the same puzzles come back on demand.
func newGenerator() *sudoku.Generator {
	if seedFlag == 0 {
		return sudoku.NewGenerator(nil)
	}
	return sudoku.NewGenerator(rand.New(rand.NewSource(seedFlag)))
}
