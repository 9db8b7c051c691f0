// Package service implements the application's business operations on top
// of the store interfaces.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
)

// CreateTaskParams carries the validated input for creating a task.
// Any client-supplied creation timestamp has already been discarded by the
// API layer; CreatedAt is always assigned server-side.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
	DueDate     time.Time
}

// UpdateTaskParams carries the validated input for a partial update.
// Nil pointers mean "field absent". A present-but-empty string is treated
// as "no change" as well, so a PATCH cannot clear a text field to empty;
// that mirrors the long-standing behavior callers depend on.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
}

// TaskService provides the task lifecycle operations. Every operation is
// scoped to the owning user: a task belonging to someone else behaves
// exactly like a missing one.
type TaskService interface {
	// Create persists a new task and returns it with its assigned ID.
	Create(ctx context.Context, userID int64, params CreateTaskParams) (*domain.Task, error)

	// List returns all of the user's tasks; empty non-nil slice when none.
	List(ctx context.Context, userID int64) ([]*domain.Task, error)

	// GetByID returns the task or store.ErrTaskNotFound.
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)

	// Update applies a partial update and returns the updated task.
	// Returns store.ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, userID, id int64, params UpdateTaskParams) (*domain.Task, error)

	// Delete removes the task. Idempotent: deleting a non-existent ID
	// succeeds, so callers cannot distinguish "deleted" from "was absent".
	Delete(ctx context.Context, userID, id int64) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	txRunner  store.TxRunner
	logger    *slog.Logger
}

// Ensure TaskServiceImpl implements TaskService
var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, txRunner store.TxRunner, logger *slog.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskStore: taskStore,
		txRunner:  txRunner,
		logger:    logger.With("component", "task_service"),
	}
}

// Create persists a new task inside a single transaction.
func (s *TaskServiceImpl) Create(ctx context.Context, userID int64, params CreateTaskParams) (*domain.Task, error) {
	task, err := domain.NewTask(userID, params.Title, params.Description, params.Status, params.DueDate)
	if err != nil {
		s.logger.Warn("failed to create task object",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	err = s.txRunner.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		s.logger.Error("failed to save task",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created successfully",
		"task_id", task.ID,
		"user_id", userID)

	return task, nil
}

// List returns all of the user's tasks.
func (s *TaskServiceImpl) List(ctx context.Context, userID int64) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetByID returns the task or store.ErrTaskNotFound.
func (s *TaskServiceImpl) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found",
				"task_id", id,
				"user_id", userID)
		} else {
			s.logger.Error("failed to retrieve task",
				"error", err,
				"task_id", id,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve task: %w", err)
	}

	return task, nil
}

// Update applies a partial update inside a single transaction.
// The read-modify-write sequence takes no application-level lock; two
// concurrent updates to the same ID resolve to last-commit-wins at the
// storage layer.
func (s *TaskServiceImpl) Update(ctx context.Context, userID, id int64, params UpdateTaskParams) (*domain.Task, error) {
	var updated *domain.Task

	err := s.txRunner.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetByID(ctx, userID, id)
		if err != nil {
			return fmt.Errorf("failed to retrieve task for update: %w", err)
		}

		applyTaskUpdate(task, params)

		if err := txStore.Update(ctx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		updated = task
		return nil
	})

	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for update",
				"task_id", id,
				"user_id", userID)
		} else {
			s.logger.Error("failed to update task",
				"error", err,
				"task_id", id,
				"user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("task updated successfully",
		"task_id", id,
		"user_id", userID)

	return updated, nil
}

// Delete removes the task. Missing rows are absorbed; the operation is
// idempotent.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, id int64) error {
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Delete(ctx, userID, id)
	})
	if err != nil {
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", id,
			"user_id", userID)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted",
		"task_id", id,
		"user_id", userID)

	return nil
}

// applyTaskUpdate copies present, non-empty fields from params onto task.
// Empty strings and zero times are skipped, never written.
func applyTaskUpdate(task *domain.Task, params UpdateTaskParams) {
	if params.Title != nil && *params.Title != "" {
		task.Title = *params.Title
	}
	if params.Description != nil && *params.Description != "" {
		task.Description = *params.Description
	}
	if params.Status != nil && *params.Status != "" {
		task.Status = *params.Status
	}
	if params.DueDate != nil && !params.DueDate.IsZero() {
		task.DueDate = *params.DueDate
	}
}
