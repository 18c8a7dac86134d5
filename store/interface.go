package store

import "taskmaster/models"

// TaskStore defines the contract for the component owning the ordered task
// list and its persistence. All index parameters are 1-based positions in
// the current list order; out-of-range indices fail with *types.IndexError.
type TaskStore interface {
	// Load reads the persisted task list into memory. A missing file or
	// empty database yields an empty list; malformed content fails with
	// *types.PersistenceError.
	Load() error

	// Save writes the full in-memory list to the backend atomically.
	Save() error

	// Tasks returns a copy of the current list in order.
	Tasks() []models.Task

	// Len returns the number of tasks.
	Len() int

	// Append adds a task at the end of the list.
	Append(task models.Task)

	// At returns the task at the given position.
	At(index int) (models.Task, error)

	// Mutate applies fn to the task at the given position and returns the
	// updated task.
	Mutate(index int, fn func(*models.Task)) (models.Task, error)

	// Remove deletes the task at the given position, shifting subsequent
	// tasks down by one. It returns the removed task.
	Remove(index int) (models.Task, error)

	// ClearCompleted removes all completed tasks, preserving the relative
	// order of the remainder. It returns the number of tasks removed.
	ClearCompleted() int

	// Close releases any resources held by the store, such as file locks
	// or database connections.
	Close() error
}
