package store

import (
	"context"
	"database/sql"

	"github.com/taskhive/taskhive/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every operation that reads or writes an existing row is scoped by the
// owning user's ID; a task belonging to another user is indistinguishable
// from a missing one.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID, scoped to the owner.
	// Returns ErrTaskNotFound if no matching task exists.
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)

	// ListByUser returns all tasks owned by the given user. The slice is
	// empty, never nil, when no tasks exist. No ordering is guaranteed
	// beyond what the query happens to produce.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Update overwrites the stored row with the given task's mutable fields
	// (title, description, status, due date). CreatedAt is never written.
	// Returns ErrTaskNotFound if no matching task exists.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID, scoped to the owner.
	// Deleting a non-existent task is a silent no-op: the method returns
	// nil whether or not a row existed.
	Delete(ctx context.Context, userID, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}
