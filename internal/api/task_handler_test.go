package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/api/shared"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/mocks"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/internal/store"
)

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthenticatedRequest builds a request carrying the given user identity,
// as the auth middleware would have left it.
func newAuthenticatedRequest(t *testing.T, method, target string, userID int64, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request, standing in
// for the router's own parameter extraction.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleTask(id, userID int64) *domain.Task {
	return &domain.Task{
		ID:          id,
		UserID:      userID,
		Title:       "Write report",
		Description: "Quarterly numbers",
		Status:      "pending",
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	dueDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates a task and returns 201", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		task := sampleTask(42, 7)
		taskService.On("Create", mock.Anything, int64(7), service.CreateTaskParams{
			Title:       "Write report",
			Description: "Quarterly numbers",
			Status:      "pending",
			DueDate:     dueDate,
		}).Return(task, nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/api/tasks", 7, map[string]interface{}{
			"title":       "Write report",
			"description": "Quarterly numbers",
			"status":      "pending",
			"dueDate":     dueDate.Format(time.RFC3339),
		})
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "Write report", resp.Title)
		assert.True(t, resp.DueDate.Equal(dueDate))
		taskService.AssertExpectations(t)
	})

	t.Run("accepts empty strings for required text fields", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("Create", mock.Anything, int64(7), service.CreateTaskParams{
			Title:       "",
			Description: "",
			Status:      "",
			DueDate:     dueDate,
		}).Return(sampleTask(43, 7), nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/api/tasks", 7, map[string]interface{}{
			"title":       "",
			"description": "",
			"status":      "",
			"dueDate":     dueDate.Format(time.RFC3339),
		})
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		taskService.AssertExpectations(t)
	})

	t.Run("returns 422 listing every missing field", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/api/tasks", 7, map[string]interface{}{
			"title": "only a title",
		})
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "description is required")
		assert.Contains(t, rr.Body.String(), "status is required")
		assert.Contains(t, rr.Body.String(), "dueDate is required")
		taskService.AssertNotCalled(t, "Create")
	})

	t.Run("returns 400 for malformed JSON", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{not json"))
		req = req.WithContext(context.WithValue(req.Context(), shared.UserIDContextKey, int64(7)))
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		taskService.AssertNotCalled(t, "Create")
	})

	t.Run("returns 401 without an authenticated user", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		rr := httptest.NewRecorder()
		handler.Create(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		taskService.AssertNotCalled(t, "Create")
	})
}

func TestTaskHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("returns the user's tasks", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("List", mock.Anything, int64(7)).
			Return([]*domain.Task{sampleTask(1, 7), sampleTask(2, 7)}, nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/api/tasks", 7, nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("serializes an empty list as [] not null", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("List", mock.Anything, int64(7)).Return([]*domain.Task{}, nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/api/tasks", 7, nil)
		rr := httptest.NewRecorder()
		handler.List(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})
}

func TestTaskHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the task", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("GetByID", mock.Anything, int64(7), int64(42)).
			Return(sampleTask(42, 7), nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/api/tasks/42", 7, nil)
		req = withURLParam(req, "id", "42")
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(42), resp.ID)
	})

	t.Run("returns 404 for a missing task", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("GetByID", mock.Anything, int64(7), int64(99)).
			Return(nil, fmt.Errorf("failed to retrieve task: %w", store.ErrTaskNotFound))

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/api/tasks/99", 7, nil)
		req = withURLParam(req, "id", "99")
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task not found")
	})

	t.Run("rejects a non-numeric ID", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/api/tasks/abc", 7, nil)
		req = withURLParam(req, "id", "abc")
		rr := httptest.NewRecorder()
		handler.Get(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		taskService.AssertNotCalled(t, "GetByID")
	})
}

func TestTaskHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("applies a partial update", func(t *testing.T) {
		t.Parallel()

		updated := sampleTask(42, 7)
		updated.Status = "done"

		taskService := new(mocks.TaskService)
		taskService.On("Update", mock.Anything, int64(7), int64(42),
			mock.MatchedBy(func(params service.UpdateTaskParams) bool {
				return params.Title == nil &&
					params.Status != nil && *params.Status == "done"
			})).Return(updated, nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodPatch, "/api/tasks/42", 7, map[string]interface{}{
			"status": "done",
		})
		req = withURLParam(req, "id", "42")
		rr := httptest.NewRecorder()
		handler.Update(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "done", resp.Status)
		taskService.AssertExpectations(t)
	})

	t.Run("returns 404 for a missing task", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("Update", mock.Anything, int64(7), int64(99), mock.Anything).
			Return(nil, fmt.Errorf("failed to retrieve task for update: %w", store.ErrTaskNotFound))

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodPatch, "/api/tasks/99", 7, map[string]interface{}{
			"status": "done",
		})
		req = withURLParam(req, "id", "99")
		rr := httptest.NewRecorder()
		handler.Update(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("returns 204 with no body", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("Delete", mock.Anything, int64(7), int64(42)).Return(nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodDelete, "/api/tasks/42", 7, nil)
		req = withURLParam(req, "id", "42")
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		taskService.AssertExpectations(t)
	})

	t.Run("returns 204 even when the task never existed", func(t *testing.T) {
		t.Parallel()

		taskService := new(mocks.TaskService)
		taskService.On("Delete", mock.Anything, int64(7), int64(99)).Return(nil)

		handler := NewTaskHandler(taskService, testHandlerLogger())

		req := newAuthenticatedRequest(t, http.MethodDelete, "/api/tasks/99", 7, nil)
		req = withURLParam(req, "id", "99")
		rr := httptest.NewRecorder()
		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
