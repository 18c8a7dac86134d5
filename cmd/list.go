package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskmaster/internal/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List all tasks",
	Long:    `List all tasks with their 1-based index, priority glyph (▲ high, ◆ medium, ▼ low) and completion status ([✓] done, [·] pending).`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		eng, closeStore := mustEngine()
		defer closeStore()

		fmt.Println(ui.RenderTaskList(eng.Tasks()))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
