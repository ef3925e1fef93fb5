package memory

// Heap is the default provider. It allocates from the Go heap, constructs by
// assignment and destroys by zeroing the slot so the collector can reclaim
// anything the element referenced. All Heap values are equal.
type Heap[T any] struct{}

var _ Provider[int] = Heap[int]{}

func (Heap[T]) Allocate(n int) ([]T, error) { return AllocateAligned[T](n) }

// Deallocate is a no-op; the collector reclaims the buffer once unreferenced.
func (Heap[T]) Deallocate([]T, int) {}

func (Heap[T]) Construct(slot *T, value T) error {
	*slot = value
	return nil
}

func (Heap[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// Traits reports that heap storage follows its owner on move assignment.
func (Heap[T]) Traits() Traits { return Traits{PropagateOnMoveAssign: true} }

func (h Heap[T]) SelectOnCopy() Provider[T] { return h }

func (Heap[T]) Equal(other Provider[T]) bool {
	_, ok := other.(Heap[T])
	return ok
}
