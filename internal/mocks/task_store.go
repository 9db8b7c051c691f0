package mocks

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
)

// TaskStore is a testify mock for store.TaskStore.
type TaskStore struct {
	mock.Mock
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// Create mocks store.TaskStore.Create
func (m *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// GetByID mocks store.TaskStore.GetByID
func (m *TaskStore) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	args := m.Called(ctx, userID, id)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByUser mocks store.TaskStore.ListByUser
func (m *TaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	args := m.Called(ctx, userID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

// Update mocks store.TaskStore.Update
func (m *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

// Delete mocks store.TaskStore.Delete
func (m *TaskStore) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// WithTx mocks store.TaskStore.WithTx
// It returns the mock itself so that transactional code paths exercise the
// same expectations.
func (m *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
