package main

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run straight away",
	Long: `Start playing Sky Jumper without going through the menu.

Controls:
  Left/A, Right/D  - Move (hold)
  Space/Up/W       - Shoot
  P/Esc            - Pause
  R                - Play again (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

With a mouse, the bottom bar works as on-screen buttons: hold the arrows to
move, click FIRE or anywhere on the playfield to shoot.

Difficulty options:
  easy   - Stage 1, fewer enemies and blackholes
  normal - Stage 1, stages progress with the score
  hard   - Start at stage 3, more enemies and blackholes
  fixed  - No progression, stays at config's start stage

Examples:
  jumper play
  jumper play --difficulty easy
  jumper play --seed 42
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s := newSession()
	defer s.close()

	if s.play() {
		s.menu()
	}
}
