package cmd

import (
	"github.com/spf13/cobra"

	"taskmaster/internal/engine"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"d"},
	Short:   "Delete a task",
	Long:    `Delete the task at the given 1-based index. Tasks after it shift down by one.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runIndexCommand(args[0], (*engine.Engine).Delete)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
