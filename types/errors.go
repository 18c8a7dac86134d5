package types

import "fmt"

// ValidationError reports user input that is empty or otherwise unusable.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s' needs a value, please provide one", e.Field)
}

// IndexError reports a 1-based task index outside the current list bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("task with id %d not found", e.Index)
}

// PersistenceError reports a failed load or save of the task list.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("could not %s tasks at %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// EnvironmentError reports that the storage location could not be resolved.
type EnvironmentError struct {
	Reason string
	Err    error
}

func (e *EnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *EnvironmentError) Unwrap() error { return e.Err }
