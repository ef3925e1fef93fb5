package vector_test

import (
	"testing"

	"github.com/kbukum/fcvec/memory"
	"github.com/kbukum/fcvec/testutil"
	"github.com/kbukum/fcvec/vector"
)

// runTyped runs one generic test body per element type under test.
func runTyped(t *testing.T, ints, strs, pairs, bytes, ptrs func(*testing.T)) {
	t.Run("int", ints)
	t.Run("string", strs)
	t.Run("pair", pairs)
	t.Run("bytes", bytes)
	t.Run("pointer", ptrs)
}

func tracked[T any](stats *memory.Stats) *memory.Instrumented[T] {
	return memory.NewInstrumented[T](stats)
}

func newTracked[T any](t *testing.T, capacity int, stats *memory.Stats) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](capacity, vector.WithProvider[T](tracked[T](stats)))
	if err != nil {
		t.Fatalf("New(%d): unexpected error: %v", capacity, err)
	}
	return v
}

func pushAll[T any](t *testing.T, v *vector.Vector[T], values []T) {
	t.Helper()
	for i, value := range values {
		if err := v.PushBack(value); err != nil {
			t.Fatalf("PushBack #%d: unexpected error: %v", i, err)
		}
	}
}

func assertElements[T any](t *testing.T, v *vector.Vector[T], want []T) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("expected size %d, got %d", len(want), v.Len())
	}
	if !testutil.SliceEqual(v.Data(), want) {
		t.Errorf("expected elements %v, got %v", want, v.Data())
	}
}

// snapshot copies the live elements so later mutation cannot change them.
func snapshot[T any](v *vector.Vector[T]) []T {
	return append([]T(nil), v.Data()...)
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
