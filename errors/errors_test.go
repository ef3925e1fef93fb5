package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeOutOfRange, "bad index")
	if err.Code != ErrCodeOutOfRange {
		t.Errorf("expected code %s, got %s", ErrCodeOutOfRange, err.Code)
	}
	if err.Message != "bad index" {
		t.Errorf("expected message 'bad index', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("OUT_OF_RANGE should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeOutOfMemory, "no memory")
	if !err.Retryable {
		t.Error("OUT_OF_MEMORY should be retryable")
	}
}

func TestAppError_CapacityExceeded_Success(t *testing.T) {
	err := CapacityExceeded("push_back", 9, 8)
	if err.Code != ErrCodeCapacityExceeded {
		t.Errorf("expected CAPACITY_EXCEEDED, got %s", err.Code)
	}
	if err.Details["requested"] != 9 {
		t.Errorf("expected requested=9, got %v", err.Details["requested"])
	}
	if err.Details["capacity"] != 8 {
		t.Errorf("expected capacity=8, got %v", err.Details["capacity"])
	}
	if !strings.Contains(err.Error(), "push_back") {
		t.Errorf("expected operation in message, got %q", err.Error())
	}
}

func TestAppError_OutOfMemory_Success(t *testing.T) {
	cause := fmt.Errorf("budget exhausted")
	err := OutOfMemory(16, cause)
	if err.Code != ErrCodeOutOfMemory {
		t.Errorf("expected OUT_OF_MEMORY, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if !err.Retryable {
		t.Error("OutOfMemory should be retryable")
	}
}

func TestAppError_OutOfRange_Success(t *testing.T) {
	err := OutOfRange(5, 3)
	if err.Details["index"] != 5 || err.Details["size"] != 3 {
		t.Errorf("unexpected details %v", err.Details)
	}
	if !strings.Contains(err.Error(), "[0, 3)") {
		t.Errorf("expected range in message, got %q", err.Error())
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "negative capacity")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := ConstructFailed(nil).WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := OutOfRange(1, 0).WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["index"] != 1 {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{"another": "detail"})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := OutOfRange(0, 0)
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Is_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{"capacity", CapacityExceeded("insert", 1, 0), ErrCapacityExceeded, true},
		{"memory", OutOfMemory(4, nil), ErrOutOfMemory, true},
		{"range", OutOfRange(2, 1), ErrOutOfRange, true},
		{"construct", ConstructFailed(nil), ErrConstructFailed, true},
		{"mismatch", OutOfRange(2, 1), ErrCapacityExceeded, false},
		{"wrapped", fmt.Errorf("resize: %w", CapacityExceeded("resize", 9, 8)), ErrCapacityExceeded, true},
		{"plain", fmt.Errorf("plain"), ErrOutOfMemory, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := stderrors.Is(tc.err, tc.sentinel); got != tc.want {
				t.Errorf("expected Is=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	wrapped := fmt.Errorf("copy: %w", OutOfMemory(8, nil))
	if !IsCode(wrapped, ErrCodeOutOfMemory) {
		t.Error("expected wrapped OUT_OF_MEMORY to match")
	}
	if IsCode(wrapped, ErrCodeCapacityExceeded) {
		t.Error("expected code mismatch")
	}
	if IsCode(nil, ErrCodeInternal) {
		t.Error("expected nil error not to match")
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", MissingField("name"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if appErr.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", appErr.Code)
	}

	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected no AppError in plain error")
	}
}

func TestErrorCode_IsRetryableCode_Table(t *testing.T) {
	if !IsRetryableCode(ErrCodeOutOfMemory) {
		t.Errorf("expected %s to be retryable", ErrCodeOutOfMemory)
	}

	nonRetryable := []ErrorCode{ErrCodeCapacityExceeded, ErrCodeOutOfRange, ErrCodeConstructFailed, ErrCodeInvalidInput, ErrCodeInternal}
	for _, code := range nonRetryable {
		if IsRetryableCode(code) {
			t.Errorf("expected %s to NOT be retryable", code)
		}
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = Validation("bad")
	if err.Error() == "" {
		t.Error("expected non-empty error string")
	}
}
