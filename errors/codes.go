package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Container errors
const (
	// ErrCodeCapacityExceeded indicates an operation would need more slots than the container holds.
	ErrCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	// ErrCodeOutOfRange indicates an index outside the live prefix.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Memory errors
const (
	// ErrCodeOutOfMemory indicates a provider could not satisfy an allocation.
	ErrCodeOutOfMemory ErrorCode = "OUT_OF_MEMORY"
	// ErrCodeConstructFailed indicates an element could not be constructed in place.
	ErrCodeConstructFailed ErrorCode = "CONSTRUCT_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeOutOfMemory:     true,
	ErrCodeConstructFailed: false,
	ErrCodeInternal:        false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
