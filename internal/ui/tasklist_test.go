package ui

import (
	"strings"
	"testing"

	"taskmaster/models"
)

func TestRenderTaskListEmpty(t *testing.T) {
	out := RenderTaskList(nil)
	if !strings.Contains(out, "No tasks, all done!") {
		t.Errorf("empty list rendering = %q", out)
	}
}

func TestRenderTaskListGlyphsAndOrder(t *testing.T) {
	pending := models.NewTask("Buy groceries")
	done := models.NewTask("Water the plants")
	done.Completed = true
	done.Priority = models.PriorityHigh

	out := RenderTaskList([]models.Task{pending, done})

	for _, want := range []string{"1", "2", "◆", "▲", "[·]", "[✓]", "Buy groceries", "Water the plants"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendering missing %q:\n%s", want, out)
		}
	}

	// One task per line, indices in order.
	lines := strings.Split(out, "\n")
	if len(lines) != 3 { // header + two tasks
		t.Fatalf("rendering has %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Buy groceries") || !strings.Contains(lines[2], "Water the plants") {
		t.Errorf("tasks out of order:\n%s", out)
	}
}

func TestRenderTaskListIndexWidth(t *testing.T) {
	tasks := make([]models.Task, 10)
	for i := range tasks {
		tasks[i] = models.NewTask("task")
	}
	out := RenderTaskList(tasks)
	if !strings.Contains(out, "10") {
		t.Errorf("two-digit index missing:\n%s", out)
	}
}
