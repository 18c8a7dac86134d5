// Package engine interprets task commands against the store: it validates
// input, applies exactly one command at a time, persists after every
// mutation, and produces the outcome message shown to the user.
package engine

import (
	"fmt"
	"strings"

	"taskmaster/models"
	"taskmaster/store"
	"taskmaster/types"
)

// Result is the outcome of a successfully applied command. Warning is set
// when the in-memory mutation succeeded but writing it out did not; the
// mutation is not rolled back.
type Result struct {
	Message string
	Warning string
}

// Engine applies commands to a task store.
type Engine struct {
	store store.TaskStore
}

// New creates an engine over an already-loaded store.
func New(s store.TaskStore) *Engine {
	return &Engine{store: s}
}

// Tasks returns the current list for display.
func (e *Engine) Tasks() []models.Task {
	return e.store.Tasks()
}

// Add appends a new pending, medium-priority task.
func (e *Engine) Add(description string) (Result, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return Result{}, &types.ValidationError{Field: "description"}
	}
	e.store.Append(models.NewTask(desc))
	return e.persisted(fmt.Sprintf("Added task #%d: %s", e.store.Len(), desc)), nil
}

// Complete marks the addressed task as done.
func (e *Engine) Complete(index int) (Result, error) {
	task, err := e.store.Mutate(index, func(t *models.Task) { t.Completed = true })
	if err != nil {
		return Result{}, err
	}
	return e.persisted(fmt.Sprintf("Completed task: %s", task.Description)), nil
}

// Delete removes the addressed task; subsequent indices shift down by one.
func (e *Engine) Delete(index int) (Result, error) {
	removed, err := e.store.Remove(index)
	if err != nil {
		return Result{}, err
	}
	return e.persisted(fmt.Sprintf("Deleted task #%d: '%s'", index, removed.Description)), nil
}

// Change replaces the description of the addressed task.
func (e *Engine) Change(index int, description string) (Result, error) {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return Result{}, &types.ValidationError{Field: "description"}
	}
	old, err := e.store.At(index)
	if err != nil {
		return Result{}, err
	}
	if _, err := e.store.Mutate(index, func(t *models.Task) { t.Description = desc }); err != nil {
		return Result{}, err
	}
	return e.persisted(fmt.Sprintf("Description of task %d changed.\n\tOld: %q\n\tNew: %q", index, old.Description, desc)), nil
}

// Up raises the priority of the addressed task one step. High saturates.
func (e *Engine) Up(index int) (Result, error) {
	task, err := e.store.Mutate(index, func(t *models.Task) { t.Priority = t.Priority.Raise() })
	if err != nil {
		return Result{}, err
	}
	return e.persisted(fmt.Sprintf("Prioritized task: %s", task.Description)), nil
}

// Down lowers the priority of the addressed task one step. Low saturates.
func (e *Engine) Down(index int) (Result, error) {
	task, err := e.store.Mutate(index, func(t *models.Task) { t.Priority = t.Priority.Lower() })
	if err != nil {
		return Result{}, err
	}
	return e.persisted(fmt.Sprintf("Deprioritized task: %s", task.Description)), nil
}

// Clear removes all completed tasks. Running it on a list without
// completed tasks is a no-op.
func (e *Engine) Clear() (Result, error) {
	cleared := e.store.ClearCompleted()
	return e.persisted(fmt.Sprintf("Cleared %d completed tasks", cleared)), nil
}

// Shutdown performs the final save on session end.
func (e *Engine) Shutdown() error {
	return e.store.Save()
}

// persisted saves after a mutation and attaches a warning instead of
// failing when the write does not go through.
func (e *Engine) persisted(msg string) Result {
	res := Result{Message: msg}
	if err := e.store.Save(); err != nil {
		res.Warning = fmt.Sprintf("warning: change applied in memory but not written: %v", err)
	}
	return res
}
