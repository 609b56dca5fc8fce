package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start at the main menu",
	Long: `Start Sky Jumper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, pick Menu to come back here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  N            - Change name
  Q            - Quit

Examples:
  jumper menu
  jumper menu --fps 30
  jumper menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := newSession()
	defer s.close()

	s.menu()
}
