package testutil

import "github.com/kbukum/fcvec/audit"

// Pair is the struct element type of the audit scenarios.
type Pair = audit.Pair

// Value returns the deterministic element identified by id. See audit.Value.
func Value[T any](id int) T { return audit.Value[T](id) }

// Values returns n consecutive elements starting at id first.
func Values[T any](first, n int) []T { return audit.Values[T](first, n) }

// Equal compares elements deeply.
func Equal[T any](a, b T) bool { return audit.Equal(a, b) }

// SliceEqual compares two element slices with Equal.
func SliceEqual[T any](a, b []T) bool { return audit.SliceEqual(a, b) }
