package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Sentinels for errors.Is matching. They compare by code only.
var (
	ErrCapacityExceeded = &AppError{Code: ErrCodeCapacityExceeded}
	ErrOutOfMemory      = &AppError{Code: ErrCodeOutOfMemory}
	ErrOutOfRange       = &AppError{Code: ErrCodeOutOfRange}
	ErrConstructFailed  = &AppError{Code: ErrCodeConstructFailed}
	ErrInvalidInput     = &AppError{Code: ErrCodeInvalidInput}
	ErrMissingField     = &AppError{Code: ErrCodeMissingField}
	ErrInternal         = &AppError{Code: ErrCodeInternal}
)

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// IsCode reports whether err, or any error it wraps, is an AppError with code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// AsAppError extracts the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// --- Common Error Constructors ---

// CapacityExceeded creates an error for an operation that needs requested
// live slots in a container that holds at most capacity.
func CapacityExceeded(op string, requested, capacity int) *AppError {
	return &AppError{
		Code:    ErrCodeCapacityExceeded,
		Message: fmt.Sprintf("%s needs %d slots but capacity is %d", op, requested, capacity),
		Details: map[string]any{"operation": op, "requested": requested, "capacity": capacity},
	}
}

// OutOfMemory creates an error for a provider that cannot supply slots.
func OutOfMemory(slots int, cause error) *AppError {
	return &AppError{
		Code: ErrCodeOutOfMemory, Message: fmt.Sprintf("cannot allocate %d slots", slots),
		Retryable: true, Details: map[string]any{"slots": slots}, Cause: cause,
	}
}

// OutOfRange creates an error for an index outside [0, size).
func OutOfRange(index, size int) *AppError {
	return &AppError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, size),
		Details: map[string]any{"index": index, "size": size},
	}
}

// ConstructFailed creates an error for an element construction that failed.
func ConstructFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeConstructFailed, Message: "element construction failed", Cause: cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause,
	}
}
