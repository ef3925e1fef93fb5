// Package errors provides the structured error type shared by fcvec packages.
// Every reported failure carries a machine-readable code, a human-readable
// message, optional details and an underlying cause, and can be matched with
// the standard library's errors.Is against the sentinel values below.
package errors
