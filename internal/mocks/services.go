package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/service"
)

// TaskService is a testify mock for service.TaskService.
type TaskService struct {
	mock.Mock
}

var _ service.TaskService = (*TaskService)(nil)

// Create mocks service.TaskService.Create
func (m *TaskService) Create(ctx context.Context, userID int64, params service.CreateTaskParams) (*domain.Task, error) {
	args := m.Called(ctx, userID, params)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

// List mocks service.TaskService.List
func (m *TaskService) List(ctx context.Context, userID int64) ([]*domain.Task, error) {
	args := m.Called(ctx, userID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mocks service.TaskService.GetByID
func (m *TaskService) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	args := m.Called(ctx, userID, id)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

// Update mocks service.TaskService.Update
func (m *TaskService) Update(ctx context.Context, userID, id int64, params service.UpdateTaskParams) (*domain.Task, error) {
	args := m.Called(ctx, userID, id, params)
	if task := args.Get(0); task != nil {
		return task.(*domain.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete mocks service.TaskService.Delete
func (m *TaskService) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// AuthService is a testify mock for service.AuthService.
type AuthService struct {
	mock.Mock
}

var _ service.AuthService = (*AuthService)(nil)

// Register mocks service.AuthService.Register
func (m *AuthService) Register(ctx context.Context, params service.RegisterParams) (*domain.User, error) {
	args := m.Called(ctx, params)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// VerifyCredentials mocks service.AuthService.VerifyCredentials
func (m *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListUsers mocks service.AuthService.ListUsers
func (m *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID mocks service.AuthService.GetByID
func (m *AuthService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// GetProfile mocks service.AuthService.GetProfile
func (m *AuthService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}
