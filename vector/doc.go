// Package vector provides Vector, a sequence container whose capacity is fixed
// when it is created.
//
// A Vector allocates exactly Capacity slots once, up front, through a
// memory.Provider and never reallocates to make room: any operation that would
// need more than Capacity live elements fails with CAPACITY_EXCEEDED and
// leaves the vector exactly as it was. Every element construction and
// destruction goes through the provider, so an instrumented provider sees the
// complete lifecycle of every element.
//
//	v, err := vector.New[int](8)
//	if err != nil {
//	    return err
//	}
//	defer v.Release()
//	_ = v.PushBack(1)
//
// Reported failures are *errors.AppError values with codes CAPACITY_EXCEEDED,
// OUT_OF_MEMORY or INVALID_INPUT, plus whatever error the provider returns from
// Construct. Broken preconditions (PopBack, Front or Back on an empty vector,
// Index, Insert or Erase with a position outside the live range) are
// programming errors and panic, the same way slice indexing does. At is the
// checked accessor and reports OUT_OF_RANGE instead.
//
// A Vector is not safe for concurrent use.
package vector
