package memory

import (
	"fmt"

	"github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/logger"
)

// Limited caps the number of slots outstanding through it. Copies selected
// for copy construction share the same budget.
type Limited[T any] struct {
	inner  Provider[T]
	budget int
	inUse  int
	log    *logger.Logger
}

// NewLimited puts a budget of slots in front of inner. A nil inner means Heap.
func NewLimited[T any](inner Provider[T], budget int) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{inner: inner, budget: budget, log: logger.Nop()}
}

// WithLogger sets the logger used to report exhausted budgets. A nil log
// disables logging.
func (l *Limited[T]) WithLogger(log *logger.Logger) *Limited[T] {
	if log == nil {
		log = logger.Nop()
	}
	l.log = log.WithComponent("memory.limited")
	return l
}

// Budget returns the total number of slots the provider may hand out.
func (l *Limited[T]) Budget() int { return l.budget }

// InUse returns the number of slots currently allocated.
func (l *Limited[T]) InUse() int { return l.inUse }

// Available returns the number of slots that can still be allocated.
func (l *Limited[T]) Available() int { return l.budget - l.inUse }

func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n > l.Available() {
		err := errors.OutOfMemory(n, fmt.Errorf("budget of %d slots has %d available", l.budget, l.Available()))
		l.log.Warn("allocation refused", logger.Fields(
			logger.FieldSlots, n,
			"budget", l.budget,
			"in_use", l.inUse,
		))
		return nil, err
	}
	buf, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.inUse += n
	return buf, nil
}

func (l *Limited[T]) Deallocate(buf []T, n int) {
	l.inner.Deallocate(buf, n)
	l.inUse -= n
}

func (l *Limited[T]) Construct(slot *T, value T) error { return l.inner.Construct(slot, value) }

func (l *Limited[T]) Destroy(slot *T) { l.inner.Destroy(slot) }

func (l *Limited[T]) Traits() Traits { return l.inner.Traits() }

func (l *Limited[T]) SelectOnCopy() Provider[T] { return l }

func (l *Limited[T]) Equal(other Provider[T]) bool {
	o, ok := other.(*Limited[T])
	return ok && o == l
}
