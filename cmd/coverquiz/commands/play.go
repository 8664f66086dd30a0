package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/handiism/coverquiz/internal/highscore"
	"github.com/handiism/coverquiz/internal/tui"
)

func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the interactive quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := newSource(settings, localDir)
			if err != nil {
				return err
			}
			store := highscore.NewStore(settings.HighScorePath)

			log.Printf("starting quiz, source %T, high score file %s", source, store.Path())
			return tui.Run(settings, source, store)
		},
	}
	return cmd
}
