package vector

import (
	"github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/memory"
)

// Vector is a fixed-capacity sequence of T.
//
// buf holds exactly Capacity slots and is nil iff Capacity is 0. Slots
// [0, size) are live; slots [size, len(buf)) are uninitialized.
type Vector[T any] struct {
	provider memory.Provider[T]
	buf      []T
	size     int
}

// Option configures a Vector at construction.
type Option[T any] func(*Vector[T])

// WithProvider sets the memory provider. A nil provider selects memory.Heap.
func WithProvider[T any](p memory.Provider[T]) Option[T] {
	return func(v *Vector[T]) {
		if p != nil {
			v.provider = p
		}
	}
}

// New creates an empty vector able to hold capacity elements. Storage for all
// of them is allocated immediately, unless capacity is 0.
func New[T any](capacity int, opts ...Option[T]) (*Vector[T], error) {
	v := newVector(opts...)
	if capacity < 0 {
		return nil, errors.InvalidInput("capacity", "capacity must not be negative")
	}
	if err := v.acquire(capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFrom creates a vector of the given capacity holding a copy of values.
// It fails with CAPACITY_EXCEEDED, before allocating anything, when values
// does not fit.
func NewFrom[T any](capacity int, values []T, opts ...Option[T]) (*Vector[T], error) {
	if capacity < 0 {
		return nil, errors.InvalidInput("capacity", "capacity must not be negative")
	}
	if len(values) > capacity {
		return nil, errors.CapacityExceeded("construct", len(values), capacity)
	}
	v := newVector(opts...)
	if err := v.acquire(capacity); err != nil {
		return nil, err
	}
	if err := v.appendAll(values); err != nil {
		v.release()
		return nil, err
	}
	return v, nil
}

func newVector[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{provider: memory.Heap[T]{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Clone returns an independent copy with the same capacity and elements. The
// copy's provider is chosen by the source provider's SelectOnCopy.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{provider: v.provider.SelectOnCopy()}
	if err := c.acquire(v.Capacity()); err != nil {
		return nil, err
	}
	if err := c.appendAll(v.Data()); err != nil {
		c.release()
		return nil, err
	}
	return c, nil
}

// Move returns a new vector that takes over v's storage and elements. v keeps
// its provider and is left empty with capacity 0.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{provider: v.provider}
	m.swapStorage(v)
	return m
}

// Release destroys every element and returns the storage to the provider.
// The vector is left empty with capacity 0 and may be reused as the target of
// an assignment.
func (v *Vector[T]) Release() {
	v.Clear()
	v.release()
}

// Provider returns the vector's memory provider.
func (v *Vector[T]) Provider() memory.Provider[T] { return v.provider }

// Capacity returns the maximum number of elements the vector can hold.
func (v *Vector[T]) Capacity() int { return len(v.buf) }

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Full reports whether the vector has no free slots.
func (v *Vector[T]) Full() bool { return v.size == len(v.buf) }

// Data returns the live elements. The slice aliases the vector's storage, is
// capped at Len and is nil iff Capacity is 0.
func (v *Vector[T]) Data() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf[:v.size:v.size]
}

// At returns a pointer to element i, or OUT_OF_RANGE when i is not in [0, Len).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.OutOfRange(i, v.size)
	}
	return &v.buf[i], nil
}

// Index returns a pointer to element i. It panics when i is not in [0, Len).
func (v *Vector[T]) Index(i int) *T {
	v.mustLive(i)
	return &v.buf[i]
}

// Front returns a pointer to the first element. It panics when empty.
func (v *Vector[T]) Front() *T {
	v.mustLive(0)
	return &v.buf[0]
}

// Back returns a pointer to the last element. It panics when empty.
func (v *Vector[T]) Back() *T {
	v.mustLive(v.size - 1)
	return &v.buf[v.size-1]
}

func (v *Vector[T]) mustLive(i int) {
	if i < 0 || i >= v.size {
		panic(errors.OutOfRange(i, v.size))
	}
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacities and providers are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}
