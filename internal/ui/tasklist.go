package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"taskmaster/models"
)

// IsInteractive reports whether stdin and stdout are attached to a
// terminal. Piped output and scripted input skip prompts and decoration.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderTaskList renders the list one task per line: 1-based index,
// priority glyph, completion glyph, description. An empty list renders a
// friendly all-done message.
func RenderTaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return StyleSuccess.Render("No tasks, all done!")
	}

	numWidth := len(fmt.Sprintf("%d", len(tasks)))

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Your tasks:"))
	b.WriteString("\n")
	for i, task := range tasks {
		index := StyleIndex.Render(fmt.Sprintf("%*d", numWidth, i+1))
		prio := PriorityStyle(task.Priority).Render(task.Priority.Glyph())

		status := task.StatusGlyph()
		desc := task.Description
		if task.Completed {
			status = StyleDone.Render(status)
			desc = StyleSubtle.Render(desc)
		} else {
			status = StylePending.Render(status)
		}

		b.WriteString(fmt.Sprintf("%s: %s %s %s\n", index, prio, status, desc))
	}
	return strings.TrimRight(b.String(), "\n")
}
