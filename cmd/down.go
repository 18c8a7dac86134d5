package cmd

import (
	"github.com/spf13/cobra"

	"taskmaster/internal/engine"
)

// downCmd represents the down command
var downCmd = &cobra.Command{
	Use:   "down <id>",
	Short: "Rank down a task's priority",
	Long:  `Lower the priority of the task at the given index one step: high → medium → low. A task already at low stays there.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runIndexCommand(args[0], (*engine.Engine).Down)
	},
}

func init() {
	rootCmd.AddCommand(downCmd)
}
