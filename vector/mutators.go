package vector

import "github.com/kbukum/fcvec/errors"

// Resize sets the number of live elements to n, destroying elements from the
// tail or appending zero values. It fails with CAPACITY_EXCEEDED when
// n > Capacity, without touching the vector.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill is Resize appending copies of fill. If constructing a copy fails,
// the copies already appended are destroyed and the error is returned.
func (v *Vector[T]) ResizeFill(n int, fill T) error {
	if n < 0 {
		return errors.InvalidInput("n", "size must not be negative")
	}
	if n > v.Capacity() {
		return errors.CapacityExceeded("resize", n, v.Capacity())
	}
	if n < v.size {
		v.truncate(n)
		return nil
	}
	return v.fill(n, fill)
}

// PushBack appends value. It fails with CAPACITY_EXCEEDED when the vector is
// full.
func (v *Vector[T]) PushBack(value T) error {
	if v.size == v.Capacity() {
		return errors.CapacityExceeded("push_back", v.size+1, v.Capacity())
	}
	if err := v.emplace(v.size, value); err != nil {
		return err
	}
	v.size++
	return nil
}

// PopBack destroys the last element. It panics when the vector is empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic(errors.OutOfRange(0, 0).WithDetail("operation", "pop_back"))
	}
	v.size--
	v.destroy(v.size)
}

// Clear destroys all elements, last first.
func (v *Vector[T]) Clear() {
	v.truncate(0)
}

// Insert places value at pos, shifting [pos, Len) one slot right, and returns
// pos. Exactly one element is constructed: the new last slot. It fails with
// CAPACITY_EXCEEDED when the vector is full and panics when pos is not in
// [0, Len].
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if pos < 0 || pos > v.size {
		panic(errors.OutOfRange(pos, v.size+1).WithDetail("operation", "insert"))
	}
	if v.size == v.Capacity() {
		return pos, errors.CapacityExceeded("insert", v.size+1, v.Capacity())
	}

	last := v.size
	if pos == last {
		if err := v.emplace(last, value); err != nil {
			return pos, err
		}
		v.size++
		return pos, nil
	}

	if err := v.emplace(last, v.buf[last-1]); err != nil {
		return pos, err
	}
	v.size++
	copy(v.buf[pos+1:last], v.buf[pos:last-1])
	v.buf[pos] = value
	return pos, nil
}

// Erase removes the element at pos, shifting (pos, Len) one slot left, and
// returns pos. Exactly one element is destroyed: the vacated last slot. It
// panics when pos is not in [0, Len).
func (v *Vector[T]) Erase(pos int) int {
	v.mustLive(pos)
	copy(v.buf[pos:v.size-1], v.buf[pos+1:v.size])
	v.size--
	v.destroy(v.size)
	return pos
}
