package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskmaster/internal/repl"
	"taskmaster/internal/ui"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Start an interactive session",
	Long:    `Start a read-eval loop that processes one command per input line until quit or end of input. Interactive mode understands short aliases; type 'h' inside the session for the full list.`,
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !ui.IsInteractive() && verbose {
			fmt.Fprintln(os.Stderr, "Note: input or output is not a terminal; line editing is unavailable.")
		}

		eng, closeStore := mustEngine()
		defer closeStore()

		session := repl.New(eng, os.Stdout, os.Stderr)
		if err := session.Run(); err != nil {
			HandleFatalError("interactive session failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
