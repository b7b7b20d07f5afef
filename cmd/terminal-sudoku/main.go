package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("terminal-sudoku failed", "error", err)
		os.Exit(1)
	}
}
