package store

import (
	"taskmaster/models"
	"taskmaster/types"
)

// taskList holds the in-memory ordered collection shared by every backend.
// Backends embed it and add Load/Save/Close.
type taskList struct {
	tasks []models.Task
}

func (l *taskList) Tasks() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *taskList) Len() int {
	return len(l.tasks)
}

func (l *taskList) Append(task models.Task) {
	l.tasks = append(l.tasks, task)
}

func (l *taskList) At(index int) (models.Task, error) {
	if err := l.check(index); err != nil {
		return models.Task{}, err
	}
	return l.tasks[index-1], nil
}

func (l *taskList) Mutate(index int, fn func(*models.Task)) (models.Task, error) {
	if err := l.check(index); err != nil {
		return models.Task{}, err
	}
	fn(&l.tasks[index-1])
	return l.tasks[index-1], nil
}

func (l *taskList) Remove(index int) (models.Task, error) {
	if err := l.check(index); err != nil {
		return models.Task{}, err
	}
	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	return removed, nil
}

func (l *taskList) ClearCompleted() int {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	cleared := len(l.tasks) - len(kept)
	l.tasks = kept
	return cleared
}

func (l *taskList) replace(tasks []models.Task) {
	l.tasks = tasks
}

func (l *taskList) check(index int) error {
	if index < 1 || index > len(l.tasks) {
		return &types.IndexError{Index: index, Len: len(l.tasks)}
	}
	return nil
}

// normalizeLoaded fills defaults for records written by older versions
// (priority did not always exist) and validates every task.
func normalizeLoaded(tasks []models.Task) ([]models.Task, error) {
	for i := range tasks {
		if tasks[i].Priority == "" {
			tasks[i].Priority = models.PriorityMedium
		}
		if err := models.ValidateStruct(tasks[i]); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}
