package cmd

import (
	"github.com/spf13/cobra"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the starting board",
	Long: `Print the starting board for the current settings and exit.

Examples:
  hexwar board
  hexwar board --width 12 --height 8 --terrain-seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gs, _, err := newGame(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		renderBoard(out, gs)
		renderLegend(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
