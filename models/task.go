package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Priority represents the priority level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Raise moves the priority one step up. High stays high.
func (p Priority) Raise() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityHigh
	}
}

// Lower moves the priority one step down. Low stays low.
func (p Priority) Lower() Priority {
	switch p {
	case PriorityHigh:
		return PriorityMedium
	case PriorityMedium:
		return PriorityLow
	default:
		return PriorityLow
	}
}

// Glyph returns the display marker for the priority: ▲ high, ◆ medium, ▼ low.
func (p Priority) Glyph() string {
	switch p {
	case PriorityLow:
		return "▼"
	case PriorityHigh:
		return "▲"
	default:
		return "◆"
	}
}

// Task represents a unit of work. A task has no stable identifier; its
// externally visible identity is its 1-based position in the list.
type Task struct {
	Description string   `json:"description" yaml:"description" toml:"description" validate:"required,min=1"`
	Completed   bool     `json:"completed" yaml:"completed" toml:"completed"`
	Priority    Priority `json:"priority" yaml:"priority" toml:"priority" validate:"required,oneof=low medium high"`
}

// TaskList is the persisted collection of tasks, in list order.
type TaskList struct {
	Tasks []Task `json:"tasks" yaml:"tasks" toml:"tasks" validate:"dive"`
}

// NewTask creates a pending, medium-priority task.
func NewTask(description string) Task {
	return Task{
		Description: description,
		Completed:   false,
		Priority:    PriorityMedium,
	}
}

// StatusGlyph returns the completion marker: [✓] done, [·] pending.
func (t Task) StatusGlyph() string {
	if t.Completed {
		return "[✓]"
	}
	return "[·]"
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}
