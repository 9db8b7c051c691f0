// Package api contains the HTTP handlers, request/response models and
// error mapping for the REST surface.
package api

import (
	"time"

	"github.com/taskhive/taskhive/internal/domain"
)

// Task request/response structures.
//
// Text fields on the create request are pointers so that "absent" and
// "present but empty" are distinguishable: presence is required, but an
// empty string is accepted as valid text.

// CreateTaskRequest defines the payload for the task creation endpoint.
// Any client-supplied creation date is ignored; the server assigns it.
type CreateTaskRequest struct {
	Title       *string    `json:"title"       validate:"required"`
	Description *string    `json:"description" validate:"required"`
	Status      *string    `json:"status"      validate:"required"`
	DueDate     *time.Time `json:"dueDate"     validate:"required"`
}

// UpdateTaskRequest defines the payload for the partial-update endpoint.
// All fields are optional; absent fields leave the stored value untouched.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskResponse defines the representation of a task returned to clients.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"createdDate"`
	DueDate     time.Time `json:"dueDate"`
}

// NewTaskResponse builds a TaskResponse from a domain Task.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedDate: task.CreatedAt,
		DueDate:     task.DueDate,
	}
}

// NewTaskListResponse builds the list representation. The result is an
// empty slice, never nil, so it serializes as [] rather than null.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, NewTaskResponse(task))
	}
	return out
}

// Auth request/response structures.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse defines the representation of a user returned to clients.
// The password hash never leaves the service boundary.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// NewUserResponse builds a UserResponse from a domain User.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// NewUserListResponse builds the list representation, empty but never nil.
func NewUserListResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, NewUserResponse(user))
	}
	return out
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}
