package vector_test

import (
	stderrors "errors"
	"testing"
	"unsafe"

	"github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/memory"
	"github.com/kbukum/fcvec/testutil"
	"github.com/kbukum/fcvec/vector"
)

func TestCopyFrom(t *testing.T) {
	runTyped(t, testCopyFrom[int], testCopyFrom[string], testCopyFrom[testutil.Pair],
		testCopyFrom[[]byte], testCopyFrom[*int])
}

func testCopyFrom[T any](t *testing.T) {
	const c = 8
	var stats memory.Stats
	calls := testutil.ExpectCalls(t, &stats)
	src := newTracked[T](t, c, &stats)
	calls.Allocate(1)

	t.Run("same capacity", func(t *testing.T) {
		dst := newTracked[T](t, c, &stats)
		calls.Allocate(1)
		for _, n := range []int{5, 2, 7, 0, 8} {
			if err := src.Assign(testutil.Values[T](n, n)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			calls = testutil.ExpectCalls(t, &stats)
			buf := unsafe.SliceData(dst.Data())
			old := dst.Len()

			if err := dst.CopyFrom(src); err != nil {
				t.Fatalf("CopyFrom: unexpected error: %v", err)
			}
			if n > old {
				calls.Construct(n - old)
			} else {
				calls.Destroy(old - n)
			}
			calls.Check()
			assertElements(t, dst, snapshot(src))
			if old > 0 && n > 0 && unsafe.SliceData(dst.Data()) != buf {
				t.Error("expected storage to be reused")
			}
		}
		dst.Release()
	})

	t.Run("different capacity", func(t *testing.T) {
		if err := src.Assign(testutil.Values[T](1, 5)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, dc := range []int{0, 4, 16} {
			dst := newTracked[T](t, dc, &stats)
			pushAll(t, dst, testutil.Values[T](20, dc/2))
			calls = testutil.ExpectCalls(t, &stats)

			if err := dst.CopyFrom(src); err != nil {
				t.Fatalf("CopyFrom: unexpected error: %v", err)
			}
			calls.Allocate(1).Construct(5).Destroy(dc / 2)
			if dc > 0 {
				calls.Deallocate(1)
			}
			calls.Check()
			if dst.Capacity() != c {
				t.Errorf("expected capacity %d, got %d", c, dst.Capacity())
			}
			assertElements(t, dst, testutil.Values[T](1, 5))
			dst.Release()
		}
	})
}

func TestCopyFrom_Self(t *testing.T) {
	var stats memory.Stats
	v := newTracked[string](t, 4, &stats)
	pushAll(t, v, []string{"a", "b"})
	calls := testutil.ExpectCalls(t, &stats)

	if err := v.CopyFrom(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls.Check()
	assertElements(t, v, []string{"a", "b"})
}

func TestCopyFrom_PropagatesProvider(t *testing.T) {
	var dstStats, srcStats memory.Stats
	traits := memory.Traits{PropagateOnCopyAssign: true}
	dst, _ := vector.NewFrom(4, []int{7, 8, 9},
		vector.WithProvider[int](tracked[int](&dstStats).WithTraits(traits)))
	src, _ := vector.NewFrom(4, []int{1, 2},
		vector.WithProvider[int](tracked[int](&srcStats).WithTraits(traits)))
	dstCalls := testutil.ExpectCalls(t, &dstStats)
	srcCalls := testutil.ExpectCalls(t, &srcStats)

	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dstCalls.Destroy(3).Deallocate(1).Check()
	srcCalls.Allocate(1).Construct(2).Check()
	if !dst.Provider().Equal(src.Provider()) {
		t.Error("expected destination to adopt the source provider")
	}
	assertElements(t, dst, []int{1, 2})
}

func TestCopyFrom_WithoutPropagationKeepsProvider(t *testing.T) {
	var dstStats, srcStats memory.Stats
	dst := newTracked[int](t, 4, &dstStats)
	src, _ := vector.NewFrom(4, []int{1, 2}, vector.WithProvider[int](tracked[int](&srcStats)))
	srcCalls := testutil.ExpectCalls(t, &srcStats)

	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	srcCalls.Check()
	if dst.Provider().Equal(src.Provider()) {
		t.Error("expected destination to keep its own provider")
	}
	if dstStats.ConstructCalls != 2 {
		t.Errorf("expected 2 constructions through the destination provider, got %d", dstStats.ConstructCalls)
	}
}

func TestCopyFrom_FailureLeavesDestination(t *testing.T) {
	var stats memory.Stats
	p := tracked[string](&stats)
	src, _ := vector.NewFrom(8, []string{"a", "b", "c", "d"}, vector.WithProvider[string](p))

	t.Run("allocation", func(t *testing.T) {
		dst, _ := vector.NewFrom(4, []string{"x"}, vector.WithProvider[string](p))
		p.FailAllocateAfter(0)
		defer p.ClearFaults()

		if err := dst.CopyFrom(src); !stderrors.Is(err, errors.ErrOutOfMemory) {
			t.Fatalf("expected OUT_OF_MEMORY, got %v", err)
		}
		if dst.Capacity() != 4 {
			t.Errorf("expected capacity 4, got %d", dst.Capacity())
		}
		assertElements(t, dst, []string{"x"})
	})

	t.Run("construction after realloc", func(t *testing.T) {
		dst, _ := vector.NewFrom(4, []string{"x"}, vector.WithProvider[string](p))
		p.FailConstructAfter(2)
		defer p.ClearFaults()
		before := stats.Snapshot()

		if err := dst.CopyFrom(src); !stderrors.Is(err, errors.ErrConstructFailed) {
			t.Fatalf("expected CONSTRUCT_FAILED, got %v", err)
		}
		want := memory.Stats{AllocateCalls: 1, DeallocateCalls: 1, ConstructCalls: 3, DestroyCalls: 2}
		if got := stats.Sub(before); got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
		assertElements(t, dst, []string{"x"})
	})

	t.Run("construction in place", func(t *testing.T) {
		dst, _ := vector.NewFrom(8, []string{"x"}, vector.WithProvider[string](p))
		p.FailConstructAfter(1)
		defer p.ClearFaults()

		if err := dst.CopyFrom(src); !stderrors.Is(err, errors.ErrConstructFailed) {
			t.Fatalf("expected CONSTRUCT_FAILED, got %v", err)
		}
		assertElements(t, dst, []string{"x"})
	})
}

func TestMoveFrom(t *testing.T) {
	runTyped(t, testMoveFrom[int], testMoveFrom[string], testMoveFrom[testutil.Pair],
		testMoveFrom[[]byte], testMoveFrom[*int])
}

func testMoveFrom[T any](t *testing.T) {
	var stats memory.Stats
	dst := newTracked[T](t, 0, &stats)

	for _, c := range []int{8, 6, 0} {
		src := newTracked[T](t, c, &stats)
		values := testutil.Values[T](c, c/2)
		pushAll(t, src, values)
		buf := unsafe.SliceData(src.Data())

		calls := testutil.ExpectCalls(t, &stats)
		oldSize, oldCap := dst.Len(), dst.Capacity()

		dst.MoveFrom(src)
		calls.Destroy(oldSize)
		if oldCap > 0 {
			calls.Deallocate(1)
		}
		calls.Check()

		if dst.Capacity() != c {
			t.Errorf("expected capacity %d, got %d", c, dst.Capacity())
		}
		assertElements(t, dst, values)
		if unsafe.SliceData(dst.Data()) != buf {
			t.Error("expected storage to be taken over, not copied")
		}
		if src.Capacity() != 0 || src.Len() != 0 || src.Data() != nil {
			t.Errorf("expected moved-from vector to be empty, got capacity %d", src.Capacity())
		}
	}
}

func TestMoveFrom_Provider(t *testing.T) {
	var dstStats, srcStats memory.Stats

	t.Run("propagates", func(t *testing.T) {
		dst := vectorWithTraits[int](t, &dstStats, memory.Traits{PropagateOnMoveAssign: true})
		src := newTracked[int](t, 4, &srcStats)
		dst.MoveFrom(src)
		if !dst.Provider().Equal(src.Provider()) {
			t.Error("expected destination to adopt the source provider")
		}
		// the adopted provider frees the storage it handed out
		before := srcStats.Snapshot()
		dst.Release()
		if got := srcStats.Sub(before).DeallocateCalls; got != 1 {
			t.Errorf("expected 1 deallocation through the source provider, got %d", got)
		}
	})

	t.Run("keeps", func(t *testing.T) {
		dst := vectorWithTraits[int](t, &dstStats, memory.Traits{})
		src := newTracked[int](t, 4, &srcStats)
		dst.MoveFrom(src)
		if dst.Provider().Equal(src.Provider()) {
			t.Error("expected destination to keep its own provider")
		}
	})

	t.Run("self", func(t *testing.T) {
		v, _ := vector.NewFrom(4, []int{1, 2})
		v.MoveFrom(v)
		assertElements(t, v, []int{1, 2})
	})
}

func vectorWithTraits[T any](t *testing.T, stats *memory.Stats, traits memory.Traits) *vector.Vector[T] {
	t.Helper()
	v, err := vector.New[T](2, vector.WithProvider[T](tracked[T](stats).WithTraits(traits)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestAssign(t *testing.T) {
	runTyped(t, testAssign[int], testAssign[string], testAssign[testutil.Pair],
		testAssign[[]byte], testAssign[*int])
}

func testAssign[T any](t *testing.T) {
	for _, c := range []int{0, 8} {
		var stats memory.Stats
		v := newTracked[T](t, c, &stats)

		for _, n := range []int{0, 5, 3, 7, 0} {
			values := testutil.Values[T](10+n, n)
			calls := testutil.ExpectCalls(t, &stats)
			old := v.Len()
			before := snapshot(v)

			err := v.Assign(values)
			if n > c {
				if !stderrors.Is(err, errors.ErrCapacityExceeded) {
					t.Fatalf("capacity %d: expected CAPACITY_EXCEEDED for %d values, got %v", c, n, err)
				}
				calls.Check()
				assertElements(t, v, before)
				continue
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n > old {
				calls.Construct(n - old)
			} else {
				calls.Destroy(old - n)
			}
			calls.Check()
			assertElements(t, v, values)
		}
	}
}

func TestAssign_AliasedInput(t *testing.T) {
	v, _ := vector.NewFrom(8, []int{0, 1, 2, 3, 4, 5})
	if err := v.Assign(v.Data()[2:]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertElements(t, v, []int{2, 3, 4, 5})

	if err := v.Assign(v.Data()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertElements(t, v, []int{2, 3, 4, 5})
}

func TestSwap(t *testing.T) {
	runTyped(t, testSwap[int], testSwap[string], testSwap[testutil.Pair],
		testSwap[[]byte], testSwap[*int])
}

func testSwap[T any](t *testing.T) {
	const c = 8
	var stats memory.Stats
	v := newTracked[T](t, c, &stats)
	pushAll(t, v, testutil.Values[T](1, 3))

	for _, c2 := range []int{4, 8, 0, 2} {
		o := newTracked[T](t, c2, &stats)
		if err := o.ResizeFill(c2/2, testutil.Value[T](c2+1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		vCap, vLen, vBuf, vData := v.Capacity(), v.Len(), unsafe.SliceData(v.Data()), snapshot(v)
		oCap, oLen, oBuf, oData := o.Capacity(), o.Len(), unsafe.SliceData(o.Data()), snapshot(o)
		calls := testutil.ExpectCalls(t, &stats)

		v.Swap(o)
		calls.Check()

		if v.Capacity() != oCap || v.Len() != oLen || unsafe.SliceData(v.Data()) != oBuf {
			t.Errorf("expected v to hold the other storage (capacity %d size %d)", oCap, oLen)
		}
		if o.Capacity() != vCap || o.Len() != vLen || unsafe.SliceData(o.Data()) != vBuf {
			t.Errorf("expected o to hold v's storage (capacity %d size %d)", vCap, vLen)
		}
		assertElements(t, v, oData)
		assertElements(t, o, vData)

		o.Release()
		calls.Destroy(vLen)
		if vCap > 0 {
			calls.Deallocate(1)
		}
		calls.Check()
	}
}

func TestSwap_Provider(t *testing.T) {
	var aStats, bStats memory.Stats

	a := vectorWithTraits[int](t, &aStats, memory.Traits{PropagateOnSwap: true})
	b := vectorWithTraits[int](t, &bStats, memory.Traits{PropagateOnSwap: true})
	pa, pb := a.Provider(), b.Provider()
	a.Swap(b)
	if !a.Provider().Equal(pb) || !b.Provider().Equal(pa) {
		t.Error("expected providers exchanged")
	}

	c := vectorWithTraits[int](t, &aStats, memory.Traits{})
	d := vectorWithTraits[int](t, &bStats, memory.Traits{})
	pc := c.Provider()
	c.Swap(d)
	if !c.Provider().Equal(pc) {
		t.Error("expected providers kept")
	}
}
