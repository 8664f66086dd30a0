package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/coverquiz/internal/highscore"
)

func highscoreCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "highscore",
		Short: "Print or reset the stored high score",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := highscore.NewStore(settings.HighScorePath)
			if reset {
				if err := store.Reset(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "High score reset")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "High score: %d\n", store.Load())
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete the stored high score")
	return cmd
}
