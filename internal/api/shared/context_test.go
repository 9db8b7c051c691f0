package shared

import (
	"context"
	"testing"
)

func TestTraceID(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		if len(traceID) != TraceIDLength*2 {
			t.Errorf("GetTraceID() length = %d, want %d hex chars", len(traceID), TraceIDLength*2)
		}
	})

	t.Run("unset context returns empty", func(t *testing.T) {
		if got := GetTraceID(context.Background()); got != "" {
			t.Errorf("GetTraceID() on bare context = %q, want empty", got)
		}
	})

	t.Run("trace IDs are unique", func(t *testing.T) {
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		if first == second {
			t.Error("two trace IDs should not collide")
		}
	})
}

func TestUserIDFromContext(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDContextKey, int64(42))
		userID, ok := UserIDFromContext(ctx)
		if !ok || userID != 42 {
			t.Errorf("UserIDFromContext() = (%d, %v), want (42, true)", userID, ok)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if _, ok := UserIDFromContext(context.Background()); ok {
			t.Error("UserIDFromContext() on bare context should report absent")
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDContextKey, "42")
		if _, ok := UserIDFromContext(ctx); ok {
			t.Error("UserIDFromContext() should reject non-int64 values")
		}
	})
}
