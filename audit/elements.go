package audit

import (
	"fmt"
	"reflect"
	"strings"
)

// Element kinds the runner can instantiate scenarios with.
const (
	ElementInt     = "int"
	ElementString  = "string"
	ElementPair    = "pair"
	ElementBytes   = "bytes"
	ElementPointer = "pointer"
)

// ElementKinds lists every element kind in run order.
var ElementKinds = []string{ElementInt, ElementString, ElementPair, ElementBytes, ElementPointer}

// Pair is a small struct element type.
type Pair struct {
	First, Second int16
}

// Value returns the element identified by id for the supported element types:
// integers, strings (id tildes), Pair, []byte (id bytes) and *int (nil for 0).
// Distinct ids give distinct values.
// It panics for any other type.
func Value[T any](id int) T {
	var zero T
	var out any
	switch any(zero).(type) {
	case int:
		out = id
	case int64:
		out = int64(id)
	case uint32:
		out = uint32(id)
	case string:
		out = strings.Repeat("~", id)
	case Pair:
		out = Pair{First: int16(id), Second: int16(id)}
	case []byte:
		out = []byte(strings.Repeat("b", id))
	case *int:
		if id != 0 {
			n := id
			out = &n
		} else {
			out = (*int)(nil)
		}
	default:
		panic(fmt.Sprintf("audit: no generator for %T", zero))
	}
	return out.(T)
}

// Values returns Value(first), Value(first+1), ... n elements in total.
func Values[T any](first, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = Value[T](first + i)
	}
	return out
}

// Equal compares elements deeply. Pointers compare by the value they point to.
func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// SliceEqual compares two element slices with Equal.
func SliceEqual[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
