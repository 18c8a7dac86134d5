package cmd

import (
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"clr"},
	Short:   "Clear all completed tasks from the list",
	Long:    `Remove every completed task, keeping the relative order of the rest. Running clear twice in a row is a no-op the second time.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		eng, closeStore := mustEngine()
		defer closeStore()

		res, err := eng.Clear()
		if err != nil {
			reportUserError(err)
			return
		}
		reportResult(res)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
