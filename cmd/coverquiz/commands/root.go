package commands

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/handiism/coverquiz/internal/config"
)

// debugLogFile receives log output when --debug is set.
const debugLogFile = "coverquiz-debug.log"

var (
	configPath string
	envFile    string
	debug      bool
	localDir   string

	settings *config.Settings
	logFile  io.Closer
)

func Execute() error {
	play := playCmd()

	root := &cobra.Command{
		Use:          "coverquiz",
		Short:        "Guess albums from their pixelated cover art",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			settings, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if err := settings.LoadCredentials(envFile); err != nil {
				return err
			}
			return setupLogging()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		RunE: play.RunE,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "coverquiz.json", "settings file (defaults are used if missing)")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with CLIENT_ID and CLIENT_SECRET")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to "+debugLogFile)
	root.PersistentFlags().StringVar(&localDir, "local", "", "play from a local music directory instead of the online catalog")

	root.AddCommand(play, previewCmd(), highscoreCmd())
	return root.Execute()
}

// setupLogging sends the log package to the debug file, or discards it.
// The TUI owns the terminal, so nothing may be logged to stderr.
func setupLogging() error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := tea.LogToFile(debugLogFile, "coverquiz")
	if err != nil {
		return err
	}
	logFile = f
	log.Printf("settings loaded from %s", configPath)
	return nil
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
