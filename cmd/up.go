package cmd

import (
	"github.com/spf13/cobra"

	"taskmaster/internal/engine"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up <id>",
	Short: "Rank up a task's priority",
	Long:  `Raise the priority of the task at the given index one step: low → medium → high. A task already at high stays there.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runIndexCommand(args[0], (*engine.Engine).Up)
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
}
