package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add <description>...",
	Aliases: []string{"a"},
	Short:   "Add a new task",
	Long:    `Add a new task to the end of the list. The description may be given as several words; they are joined with spaces. New tasks start pending with medium priority.`,
	Example: `  taskmaster add Buy groceries
  taskmaster a "Water the plants"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng, closeStore := mustEngine()
		defer closeStore()

		res, err := eng.Add(strings.Join(args, " "))
		if err != nil {
			reportUserError(err)
			return
		}
		reportResult(res)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
