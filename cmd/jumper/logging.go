package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

// logger reports to stderr while the terminal is still ours.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "jumper",
})

var logFile *os.File

// setupLogging applies --log-level and, with --log-file, gives the TUI a
// logger of its own. Without a file the TUI logs nowhere: the alt-screen
// would swallow anything written to stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	tui.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
		Level:           level,
	}))
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) {
	if logFile == nil {
		return
	}
	tui.SetLogger(nil)
	logFile.Close()
	logFile = nil
}
