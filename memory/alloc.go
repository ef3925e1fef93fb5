package memory

import (
	"fmt"
	"unsafe"

	"github.com/kbukum/fcvec/errors"
)

// maxAllocBytes caps a single allocation at the 48-bit address space the Go
// runtime can map.
const maxAllocBytes = uint64(1) << 47

// AllocateAligned obtains n zeroed slots of T from the Go heap, aligned for T.
// It fails with OUT_OF_MEMORY instead of panicking when the request cannot be
// satisfied.
func AllocateAligned[T any](n int) (buf []T, err error) {
	if n < 0 {
		return nil, errors.InvalidInput("n", fmt.Sprintf("negative slot count %d", n))
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size != 0 && uint64(n) > maxAllocBytes/size {
		return nil, errors.OutOfMemory(n, fmt.Errorf("%d slots of %d bytes exceed the allocation limit", n, size))
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, errors.OutOfMemory(n, fmt.Errorf("%v", r))
		}
	}()
	buf = make([]T, n)

	if n > 0 && uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%unsafe.Alignof(zero) != 0 {
		return nil, errors.OutOfMemory(n, fmt.Errorf("misaligned storage for %d-byte alignment", unsafe.Alignof(zero)))
	}
	return buf, nil
}
