package vector

import "iter"

// Iterator is a random-access position over a vector's live elements. A
// reverse iterator walks from the last element to the first; its Index still
// reports the element's position in the vector.
//
// Iterators are invalidated by anything that changes Len or replaces the
// storage (CopyFrom across capacities, MoveFrom, Swap, Release).
type Iterator[T any] struct {
	v       *Vector[T]
	pos     int // steps from the first element in iteration order
	reverse bool
}

// ConstIterator is an Iterator that only reads.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v: v} }

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v: v, pos: v.size} }

// RBegin returns a reverse iterator at the last element.
func (v *Vector[T]) RBegin() Iterator[T] { return Iterator[T]{v: v, reverse: true} }

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() Iterator[T] { return Iterator[T]{v: v, pos: v.size, reverse: true} }

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{v.Begin()} }

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{v.End()} }

// CRBegin returns a read-only reverse iterator at the last element.
func (v *Vector[T]) CRBegin() ConstIterator[T] { return ConstIterator[T]{v.RBegin()} }

// CREnd returns a read-only reverse iterator one before the first element.
func (v *Vector[T]) CREnd() ConstIterator[T] { return ConstIterator[T]{v.REnd()} }

// Index returns the position in the vector of the element the iterator
// refers to. For End it is Len; for REnd it is -1.
func (it Iterator[T]) Index() int {
	if it.reverse {
		return it.v.size - 1 - it.pos
	}
	return it.pos
}

// Valid reports whether the iterator refers to a live element.
func (it Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < it.v.size }

// Ref returns a pointer to the current element. It panics when not Valid.
func (it Iterator[T]) Ref() *T { return it.v.Index(it.Index()) }

// Value returns a copy of the current element. It panics when not Valid.
func (it Iterator[T]) Value() T { return *it.Ref() }

// Next returns the iterator one step forward in iteration order.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one step back in iteration order.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator n steps forward in iteration order.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the number of steps from o to it. Both must come from the same
// vector and direction.
func (it Iterator[T]) Sub(o Iterator[T]) int { return it.pos - o.pos }

// Equal reports whether both iterators are at the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.v == o.v && it.reverse == o.reverse && it.pos == o.pos
}

// Less reports whether it comes before o in iteration order.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// Const returns a read-only view of the iterator.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it} }

// Index returns the position in the vector of the current element, as
// Iterator.Index does.
func (c ConstIterator[T]) Index() int { return c.it.Index() }

// Valid reports whether the iterator refers to a live element.
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }

// Value returns a copy of the current element. It panics when not Valid.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Next returns the iterator one step forward in iteration order.
func (c ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{c.it.Next()} }

// Prev returns the iterator one step back in iteration order.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{c.it.Prev()} }

// Add returns the iterator n steps forward in iteration order.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{c.it.Add(n)} }

// Sub returns the number of steps from o to c.
func (c ConstIterator[T]) Sub(o ConstIterator[T]) int { return c.it.Sub(o.it) }

// Equal reports whether both iterators are at the same position.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// Less reports whether c comes before o in iteration order.
func (c ConstIterator[T]) Less(o ConstIterator[T]) bool { return c.it.Less(o.it) }

// All yields index and element pairs from first to last.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields index and element pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values yields the elements from first to last.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to each element from first to last, for in-place
// updates.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf[i]) {
				return
			}
		}
	}
}
