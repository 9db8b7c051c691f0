package domain

import (
	"errors"
	"time"
)

// Common task validation errors
var (
	ErrEmptyTaskOwner = errors.New("task owner ID cannot be empty")
	ErrEmptyDueDate   = errors.New("task due date cannot be empty")
)

// Task represents a single unit of work tracked by the application.
// The ID is assigned by the storage layer on creation; CreatedAt is set
// once at creation time and never mutated afterwards.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"` // Owner; scoped by the service, never exposed in task payloads
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdDate"`
	DueDate     time.Time `json:"dueDate"`
}

// NewTask creates a new Task owned by the given user. The creation timestamp
// is always taken from the server clock; any client-supplied value is ignored.
// The ID is left zero for the storage layer to assign.
//
// Status is free-form text ("pending", "in-progress", "completed",
// "cancelled" are the conventional values) and is deliberately not
// enum-enforced.
func NewTask(userID int64, title, description, status string, dueDate time.Time) (*Task, error) {
	task := &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		DueDate:     dueDate,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task has valid data.
// Empty title/description/status strings are accepted; the text fields only
// need to be present, which the API layer enforces on the request payload.
func (t *Task) Validate() error {
	if t.UserID == 0 {
		return ErrEmptyTaskOwner
	}

	if t.DueDate.IsZero() {
		return ErrEmptyDueDate
	}

	return nil
}
