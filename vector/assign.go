package vector

import "github.com/kbukum/fcvec/errors"

// CopyFrom makes v an element-wise copy of src.
//
// When the capacities differ, or v's provider propagates on copy assignment
// and the providers differ, v gets new storage of src's capacity. The new
// storage is filled before the old storage is released, so a failure leaves v
// untouched. Otherwise the existing storage is reused and only the size
// difference is constructed or destroyed.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}

	provider := v.provider
	realloc := v.Capacity() != src.Capacity()
	if provider.Traits().PropagateOnCopyAssign && !provider.Equal(src.provider) {
		provider = src.provider
		realloc = true
	}
	if !realloc {
		return v.assign(src.Data())
	}

	staged := &Vector[T]{provider: provider}
	if err := staged.acquire(src.Capacity()); err != nil {
		return err
	}
	if err := staged.appendAll(src.Data()); err != nil {
		staged.release()
		return err
	}
	v.Release()
	v.provider = provider
	v.swapStorage(staged)
	return nil
}

// MoveFrom releases v's storage and takes over src's, leaving src empty with
// capacity 0. v adopts src's provider when its provider propagates on move
// assignment.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Release()
	if v.provider.Traits().PropagateOnMoveAssign {
		v.provider = src.provider
	}
	v.swapStorage(src)
}

// Assign replaces the contents with a copy of values. It fails with
// CAPACITY_EXCEEDED, without touching the vector, when values does not fit.
func (v *Vector[T]) Assign(values []T) error {
	if len(values) > v.Capacity() {
		return errors.CapacityExceeded("assign", len(values), v.Capacity())
	}
	return v.assign(values)
}

// Swap exchanges the contents and capacities of v and o in constant time
// without constructing or destroying elements. Providers are exchanged too
// when v's provider propagates on swap.
func (v *Vector[T]) Swap(o *Vector[T]) {
	if v == o {
		return
	}
	v.swapStorage(o)
	if v.provider.Traits().PropagateOnSwap {
		v.provider, o.provider = o.provider, v.provider
	}
}

// assign overwrites the live prefix with values, which must fit. values may
// alias the live prefix. Growing constructs the new tail before assigning the
// overlap, so a failed construction leaves the old contents in place.
func (v *Vector[T]) assign(values []T) error {
	if v.size >= len(values) {
		copy(v.buf, values)
		v.truncate(len(values))
		return nil
	}
	overlap := v.size
	if err := v.appendAll(values[overlap:]); err != nil {
		return err
	}
	copy(v.buf[:overlap], values[:overlap])
	return nil
}
