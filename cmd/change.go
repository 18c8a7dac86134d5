package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// changeCmd represents the change command
var changeCmd = &cobra.Command{
	Use:     "change <id> <description>...",
	Aliases: []string{"ch"},
	Short:   "Change a task's description",
	Args:    cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index, err := parseIndex(args[0])
		if err != nil {
			reportUserError(err)
			return
		}

		eng, closeStore := mustEngine()
		defer closeStore()

		res, err := eng.Change(index, strings.Join(args[1:], " "))
		if err != nil {
			reportUserError(err)
			return
		}
		reportResult(res)
	},
}

func init() {
	rootCmd.AddCommand(changeCmd)
}
