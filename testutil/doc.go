// Package testutil provides helpers shared by fcvec tests.
//
// Value generates distinct, deterministic elements for the element types the
// container is exercised with, so one generic test body can run against ints,
// strings, pointers, structs and slices:
//
//	func testPushBack[T any](t *testing.T) {
//	    v, _ := vector.New[T](8)
//	    _ = v.PushBack(testutil.Value[T](3))
//	}
//
// Calls tracks the provider calls a test expects and compares them against a
// memory.Stats counter:
//
//	var stats memory.Stats
//	calls := testutil.ExpectCalls(t, &stats)
//	v, _ := vector.New[int](8, vector.WithProvider[int](memory.NewInstrumented[int](&stats)))
//	calls.Allocate(1).Check()
package testutil
