package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in config YAML. Save it to one of the search paths
and edit it to tune the game:

  1. --config <path>
  2. ~/.arcade/configs/jumper.yaml
  3. ./configs/jumper.yaml

Missing keys keep their default values.

Examples:
  jumper config > ~/.arcade/configs/jumper.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML(jumper.GameID)
	if data == nil {
		logger.Fatal("no default config", "game", jumper.GameID)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		logger.Fatal("could not write config", "error", err)
	}
}
