package vector_test

import (
	stderrors "errors"
	"testing"

	"github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/memory"
	"github.com/kbukum/fcvec/testutil"
	"github.com/kbukum/fcvec/vector"
)

func TestResize(t *testing.T) {
	runTyped(t, testResize[int], testResize[string], testResize[testutil.Pair],
		testResize[[]byte], testResize[*int])
}

func testResize[T any](t *testing.T) {
	const c = 8
	var stats memory.Stats
	calls := testutil.ExpectCalls(t, &stats)
	v := newTracked[T](t, c, &stats)
	calls.Allocate(1)

	var zero T
	var model []T
	for _, s := range []int{3, 7, 1, 8, 0, 4} {
		old := v.Len()
		if err := v.Resize(s); err != nil {
			t.Fatalf("Resize(%d): unexpected error: %v", s, err)
		}
		if s > old {
			calls.Construct(s - old)
			for len(model) < s {
				model = append(model, zero)
			}
		} else {
			calls.Destroy(old - s)
			model = model[:s]
		}
		calls.Check()
		assertElements(t, v, model)
		if v.Capacity() != c {
			t.Errorf("expected capacity to stay %d, got %d", c, v.Capacity())
		}

		// overwrite so the next shrink has something to lose
		for i, p := range v.Pointers() {
			*p = testutil.Value[T](s + i + 1)
			model[i] = *p
		}
	}
}

func TestResizeFill(t *testing.T) {
	runTyped(t, testResizeFill[int], testResizeFill[string], testResizeFill[testutil.Pair],
		testResizeFill[[]byte], testResizeFill[*int])
}

func testResizeFill[T any](t *testing.T) {
	v, _ := vector.NewFrom(8, testutil.Values[T](1, 2))
	fill := testutil.Value[T](9)
	if err := v.ResizeFill(5, fill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := append(testutil.Values[T](1, 2), fill, fill, fill)
	assertElements(t, v, want)

	if err := v.ResizeFill(1, fill); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertElements(t, v, testutil.Values[T](1, 1))
}

func TestResize_Errors(t *testing.T) {
	var stats memory.Stats
	calls := testutil.ExpectCalls(t, &stats)
	v := newTracked[int](t, 4, &stats)
	pushAll(t, v, []int{1, 2})
	calls.Allocate(1).Construct(2)

	if err := v.Resize(5); !stderrors.Is(err, errors.ErrCapacityExceeded) {
		t.Errorf("expected CAPACITY_EXCEEDED, got %v", err)
	}
	if err := v.Resize(-1); !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	calls.Check()
	assertElements(t, v, []int{1, 2})
}

func TestResize_ConstructFailureRollsBack(t *testing.T) {
	var stats memory.Stats
	p := tracked[string](&stats)
	v, _ := vector.NewFrom(8, []string{"a"}, vector.WithProvider[string](p))
	calls := testutil.ExpectCalls(t, &stats)

	p.FailConstructAfter(2)
	err := v.ResizeFill(6, "x")
	if !stderrors.Is(err, errors.ErrConstructFailed) {
		t.Fatalf("expected CONSTRUCT_FAILED, got %v", err)
	}
	calls.Construct(3).Destroy(2).Check()
	assertElements(t, v, []string{"a"})
}

func TestPushBack(t *testing.T) {
	runTyped(t, testPushBack[int], testPushBack[string], testPushBack[testutil.Pair],
		testPushBack[[]byte], testPushBack[*int])
}

func testPushBack[T any](t *testing.T) {
	for _, c := range []int{0, 1, 8} {
		var stats memory.Stats
		calls := testutil.ExpectCalls(t, &stats)
		v := newTracked[T](t, c, &stats)
		if c > 0 {
			calls.Allocate(1)
		}

		values := testutil.Values[T](1, c)
		for i, value := range values {
			if err := v.PushBack(value); err != nil {
				t.Fatalf("PushBack #%d: unexpected error: %v", i, err)
			}
			calls.Construct(1).Check()
			assertElements(t, v, values[:i+1])
		}

		if !v.Full() {
			t.Fatalf("capacity %d: expected full vector", c)
		}
		err := v.PushBack(testutil.Value[T](c + 1))
		if !stderrors.Is(err, errors.ErrCapacityExceeded) {
			t.Errorf("capacity %d: expected CAPACITY_EXCEEDED, got %v", c, err)
		}
		calls.Check()
		assertElements(t, v, values)
	}
}

func TestPushBack_ConstructFailure(t *testing.T) {
	var stats memory.Stats
	p := tracked[int](&stats).FailConstructAfter(1)
	v, _ := vector.New[int](4, vector.WithProvider[int](p))

	if err := v.PushBack(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.PushBack(2); !stderrors.Is(err, errors.ErrConstructFailed) {
		t.Fatalf("expected CONSTRUCT_FAILED, got %v", err)
	}
	assertElements(t, v, []int{1})
}

func TestPopBack(t *testing.T) {
	runTyped(t, testPopBack[int], testPopBack[string], testPopBack[testutil.Pair],
		testPopBack[[]byte], testPopBack[*int])
}

func testPopBack[T any](t *testing.T) {
	const c = 8
	var stats memory.Stats
	v := newTracked[T](t, c, &stats)
	values := testutil.Values[T](1, c)
	pushAll(t, v, values)
	calls := testutil.ExpectCalls(t, &stats)

	for n := c - 1; n >= 0; n-- {
		v.PopBack()
		calls.Destroy(1).Check()
		assertElements(t, v, values[:n])
	}
	expectPanic(t, "PopBack on empty", v.PopBack)
	calls.Check()
}

func TestClear(t *testing.T) {
	runTyped(t, testClear[int], testClear[string], testClear[testutil.Pair],
		testClear[[]byte], testClear[*int])
}

func testClear[T any](t *testing.T) {
	for _, c := range []int{0, 8} {
		var stats memory.Stats
		v := newTracked[T](t, c, &stats)
		pushAll(t, v, testutil.Values[T](1, c/2))
		calls := testutil.ExpectCalls(t, &stats)

		v.Clear()
		calls.Destroy(c / 2).Check()
		if !v.Empty() || v.Capacity() != c {
			t.Errorf("expected empty vector of capacity %d, got size %d capacity %d", c, v.Len(), v.Capacity())
		}
		if (v.Data() == nil) != (c == 0) {
			t.Errorf("expected storage kept after Clear")
		}
	}
}

func TestInsert(t *testing.T) {
	runTyped(t, testInsert[int], testInsert[string], testInsert[testutil.Pair],
		testInsert[[]byte], testInsert[*int])
}

func testInsert[T any](t *testing.T) {
	const c, s = 8, 6
	inserted := testutil.Value[T](13)
	for _, off := range []int{0, 1, 3, 5, 6} {
		var stats memory.Stats
		v := newTracked[T](t, c, &stats)
		values := testutil.Values[T](1, s)
		pushAll(t, v, values)
		calls := testutil.ExpectCalls(t, &stats)

		pos, err := v.Insert(off, inserted)
		if err != nil {
			t.Fatalf("Insert(%d): unexpected error: %v", off, err)
		}
		if pos != off {
			t.Errorf("Insert(%d): expected returned position %d, got %d", off, off, pos)
		}
		calls.Construct(1).Check()

		want := append(append(append([]T(nil), values[:off]...), inserted), values[off:]...)
		assertElements(t, v, want)
	}
}

func TestInsert_Full(t *testing.T) {
	runTyped(t, testInsertFull[int], testInsertFull[string], testInsertFull[testutil.Pair],
		testInsertFull[[]byte], testInsertFull[*int])
}

func testInsertFull[T any](t *testing.T) {
	for _, c := range []int{0, 8} {
		var stats memory.Stats
		v := newTracked[T](t, c, &stats)
		values := testutil.Values[T](1, c)
		pushAll(t, v, values)
		calls := testutil.ExpectCalls(t, &stats)

		if _, err := v.Insert(0, testutil.Value[T](13)); !stderrors.Is(err, errors.ErrCapacityExceeded) {
			t.Errorf("capacity %d: expected CAPACITY_EXCEEDED, got %v", c, err)
		}
		calls.Check()
		assertElements(t, v, values)
	}
}

func TestInsert_OutOfRangePanics(t *testing.T) {
	v, _ := vector.NewFrom(8, []int{1, 2})
	expectPanic(t, "Insert(3)", func() { _, _ = v.Insert(3, 0) })
	expectPanic(t, "Insert(-1)", func() { _, _ = v.Insert(-1, 0) })
	assertElements(t, v, []int{1, 2})
}

func TestInsert_ConstructFailureLeavesVector(t *testing.T) {
	var stats memory.Stats
	p := tracked[string](&stats)
	v, _ := vector.NewFrom(8, []string{"a", "b", "c"}, vector.WithProvider[string](p))

	p.FailConstructAfter(0)
	for _, pos := range []int{0, 1, 3} {
		if _, err := v.Insert(pos, "x"); !stderrors.Is(err, errors.ErrConstructFailed) {
			t.Fatalf("Insert(%d): expected CONSTRUCT_FAILED, got %v", pos, err)
		}
		assertElements(t, v, []string{"a", "b", "c"})
	}
}

func TestErase(t *testing.T) {
	runTyped(t, testErase[int], testErase[string], testErase[testutil.Pair],
		testErase[[]byte], testErase[*int])
}

func testErase[T any](t *testing.T) {
	const c = 8
	for _, s := range []int{1, 4, 8} {
		for _, off := range []int{0, 1, 3, 6, 7} {
			if off >= s {
				continue
			}
			var stats memory.Stats
			v := newTracked[T](t, c, &stats)
			values := testutil.Values[T](1, s)
			pushAll(t, v, values)
			calls := testutil.ExpectCalls(t, &stats)

			if pos := v.Erase(off); pos != off {
				t.Errorf("Erase(%d): expected returned position %d, got %d", off, off, pos)
			}
			calls.Destroy(1).Check()

			want := append(append([]T(nil), values[:off]...), values[off+1:]...)
			assertElements(t, v, want)
		}
	}
}

func TestErase_OutOfRangePanics(t *testing.T) {
	v, _ := vector.NewFrom(8, []int{1, 2})
	expectPanic(t, "Erase(2)", func() { v.Erase(2) })
	expectPanic(t, "Erase(-1)", func() { v.Erase(-1) })
	assertElements(t, v, []int{1, 2})
}

func TestPanicValueIsOutOfRange(t *testing.T) {
	v, _ := vector.New[int](2)
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.IsCode(err, errors.ErrCodeOutOfRange) {
			t.Errorf("expected OUT_OF_RANGE panic, got %v", err)
		}
	}()
	v.PopBack()
}
