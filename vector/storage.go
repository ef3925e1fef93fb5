package vector

import (
	"fmt"

	"github.com/kbukum/fcvec/errors"
)

// acquire obtains exactly capacity slots. Capacity 0 allocates nothing and
// leaves buf nil.
func (v *Vector[T]) acquire(capacity int) error {
	if capacity == 0 {
		v.buf = nil
		return nil
	}
	buf, err := v.provider.Allocate(capacity)
	if err != nil {
		return err
	}
	if len(buf) != capacity {
		if buf != nil {
			v.provider.Deallocate(buf, capacity)
		}
		return errors.OutOfMemory(capacity, fmt.Errorf("provider returned %d slots", len(buf)))
	}
	v.buf = buf
	return nil
}

// release returns the buffer to the provider. Callers destroy live elements
// first.
func (v *Vector[T]) release() {
	if v.buf == nil {
		return
	}
	v.provider.Deallocate(v.buf, len(v.buf))
	v.buf = nil
	v.size = 0
}

// swapStorage exchanges buffers and sizes, leaving providers in place.
func (v *Vector[T]) swapStorage(o *Vector[T]) {
	v.buf, o.buf = o.buf, v.buf
	v.size, o.size = o.size, v.size
}
