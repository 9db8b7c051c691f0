package domain

import (
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	dueDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid task", func(t *testing.T) {
		before := time.Now().UTC()
		task, err := NewTask(1, "T1", "D1", "pending", dueDate)
		after := time.Now().UTC()

		if err != nil {
			t.Fatalf("NewTask() unexpected error: %v", err)
		}
		if task.ID != 0 {
			t.Errorf("NewTask() ID = %d, want 0 (assigned by storage)", task.ID)
		}
		if task.CreatedAt.Before(before) || task.CreatedAt.After(after) {
			t.Errorf("NewTask() CreatedAt = %v, want within [%v, %v]", task.CreatedAt, before, after)
		}
		if !task.DueDate.Equal(dueDate) {
			t.Errorf("NewTask() DueDate = %v, want %v", task.DueDate, dueDate)
		}
	})

	t.Run("empty title is accepted", func(t *testing.T) {
		if _, err := NewTask(1, "", "D1", "pending", dueDate); err != nil {
			t.Errorf("NewTask() with empty title returned error: %v", err)
		}
	})

	t.Run("unconventional status is accepted", func(t *testing.T) {
		if _, err := NewTask(1, "T1", "D1", "someday-maybe", dueDate); err != nil {
			t.Errorf("NewTask() with free-form status returned error: %v", err)
		}
	})
}

func TestTaskValidate(t *testing.T) {
	dueDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{
			name:    "valid",
			task:    Task{UserID: 1, Title: "T1", DueDate: dueDate},
			wantErr: nil,
		},
		{
			name:    "missing owner",
			task:    Task{Title: "T1", DueDate: dueDate},
			wantErr: ErrEmptyTaskOwner,
		},
		{
			name:    "missing due date",
			task:    Task{UserID: 1, Title: "T1"},
			wantErr: ErrEmptyDueDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.task.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
