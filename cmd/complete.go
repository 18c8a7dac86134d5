package cmd

import (
	"github.com/spf13/cobra"

	"taskmaster/internal/engine"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:     "complete <id>",
	Aliases: []string{"c"},
	Short:   "Mark a task as completed",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runIndexCommand(args[0], (*engine.Engine).Complete)
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
