package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var nameCmd = &cobra.Command{
	Use:   "name [name]",
	Short: "Show or set the player name",
	Long: `Without arguments, print the player name saved with each score.
With a name, change it. Names are trimmed and cut to 20 characters.

Examples:
  jumper name
  jumper name Ada`,
	Args: cobra.ArbitraryArgs,
	Run:  runName,
}

func runName(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open scores database", "path", flagDBPath, "error", err)
	}
	defer store.Close()

	if len(args) == 0 {
		name, err := store.PlayerName()
		if err != nil {
			logger.Fatal("could not read player name", "error", err)
		}
		fmt.Println(name)
		return
	}

	name, err := store.SetPlayerName(strings.Join(args, " "))
	if err != nil {
		logger.Fatal("could not set player name", "error", err)
	}
	logger.Info("player name set", "player", name)
}
