package memory

// Traits are the propagation policies a provider declares.
type Traits struct {
	// PropagateOnCopyAssign makes copy assignment adopt the source's provider.
	PropagateOnCopyAssign bool
	// PropagateOnMoveAssign makes move assignment adopt the source's provider.
	PropagateOnMoveAssign bool
	// PropagateOnSwap makes swap exchange providers along with storage.
	PropagateOnSwap bool
}

// Provider supplies raw storage for elements of type T and constructs and
// destroys elements in that storage.
//
// Allocate returns exactly n uninitialized slots or an OUT_OF_MEMORY error.
// Deallocate receives a buffer previously returned by Allocate on an equal
// provider together with the slot count it was allocated with.
// Construct places value into an uninitialized slot and may fail; on failure
// the slot stays uninitialized. Destroy ends the lifetime of a live slot and
// must not fail.
type Provider[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T, n int)
	Construct(slot *T, value T) error
	Destroy(slot *T)
	Traits() Traits
	// SelectOnCopy returns the provider a copy-constructed container should use.
	SelectOnCopy() Provider[T]
	// Equal reports whether storage from one provider can be released by the other.
	Equal(other Provider[T]) bool
}
