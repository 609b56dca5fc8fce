// jumper is Sky Jumper, an endless vertical jumper for the terminal.
//
// Usage:
//
//	jumper                  - Start at the main menu
//	jumper play             - Start a run straight away
//	jumper menu             - Start at the main menu
//	jumper scores           - Show the top ten runs
//	jumper name [name]      - Show or set the player name
//	jumper list             - List available games
//	jumper config           - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.arcade/scores.db)
//	--config <path>         - Use a custom config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-file <path>       - Write logs to a file while the game runs
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Sky Jumper - an endless jumper in your terminal",
	Long: `Sky Jumper is an endless vertical jumper for the terminal. Bounce from
platform to platform, shoot the enemies above you and steer clear of
blackholes. The higher you climb, the harder it gets.

Available commands:
  play     - Start a run straight away
  menu     - Main menu (the default)
  scores   - View high scores
  name     - Show or set the player name
  list     - Show all available games
  config   - Print the default config

Examples:
  jumper
  jumper play --difficulty hard
  jumper play --seed 42 --log-file jumper.log --log-level debug
  jumper scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: closeLogging,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the game runs")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
