package audit

import (
	"slices"

	fcerrors "github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/memory"
	"github.com/kbukum/fcvec/vector"
)

// Scenario names in run order.
const (
	ScenarioConstruct   = "construct"
	ScenarioInitList    = "initlist"
	ScenarioResize      = "resize"
	ScenarioPushPop     = "push_pop"
	ScenarioClear       = "clear"
	ScenarioAccess      = "access"
	ScenarioCopy        = "copy"
	ScenarioMove        = "move"
	ScenarioCopyAssign  = "copy_assign"
	ScenarioMoveAssign  = "move_assign"
	ScenarioAssign      = "assign"
	ScenarioInsert      = "insert"
	ScenarioErase       = "erase"
	ScenarioSwap        = "swap"
	ScenarioIterate     = "iterate"
	ScenarioRollback    = "rollback"
	ScenarioOutOfMemory = "out_of_memory"
)

// ScenarioNames lists every scenario in run order.
var ScenarioNames = []string{
	ScenarioConstruct, ScenarioInitList, ScenarioResize, ScenarioPushPop,
	ScenarioClear, ScenarioAccess, ScenarioCopy, ScenarioMove,
	ScenarioCopyAssign, ScenarioMoveAssign, ScenarioAssign, ScenarioInsert,
	ScenarioErase, ScenarioSwap, ScenarioIterate, ScenarioRollback,
	ScenarioOutOfMemory,
}

// BudgetFactor is how many times the capacity a shared slot budget must hold:
// copy-assignment across capacities keeps four buffers alive at once.
const BudgetFactor = 4

type scenario[T any] struct {
	name string
	run  func(e *env[T])
}

func scenarios[T any]() []scenario[T] {
	return []scenario[T]{
		{ScenarioConstruct, construct[T]},
		{ScenarioInitList, initList[T]},
		{ScenarioResize, resize[T]},
		{ScenarioPushPop, pushPop[T]},
		{ScenarioClear, clearElements[T]},
		{ScenarioAccess, access[T]},
		{ScenarioCopy, copyConstruct[T]},
		{ScenarioMove, moveConstruct[T]},
		{ScenarioCopyAssign, copyAssign[T]},
		{ScenarioMoveAssign, moveAssign[T]},
		{ScenarioAssign, assign[T]},
		{ScenarioInsert, insert[T]},
		{ScenarioErase, erase[T]},
		{ScenarioSwap, swap[T]},
		{ScenarioIterate, iterate[T]},
		{ScenarioRollback, rollback[T]},
		{ScenarioOutOfMemory, outOfMemory[T]},
	}
}

// construct: one allocation per non-empty vector, one deallocation on release.
func construct[T any](e *env[T]) {
	for _, c := range offsets(0, e.capacity, 0, 1, e.capacity) {
		calls := e.expectCalls()
		v := e.newVector(c)
		if c > 0 {
			calls.allocate(1)
		}
		calls.verify("construct with capacity %d", c)
		e.expect(v.Capacity() == c, "capacity %d: got capacity %d", c, v.Capacity())
		e.expect(v.Empty(), "capacity %d: expected an empty vector, got size %d", c, v.Len())
		e.expect((v.Data() == nil) == (c == 0), "capacity %d: expected nil data iff capacity is 0", c)

		v.Release()
		if c > 0 {
			calls.deallocate(1)
		}
		calls.verify("release capacity %d", c)
	}
}

// initList: sequence construction copies every value, and an oversized
// sequence is rejected before anything is allocated.
func initList[T any](e *env[T]) {
	n := min(4, e.capacity)
	values := Values[T](1, n)
	for _, c := range offsets(0, e.capacity, n-1, n, e.capacity) {
		calls := e.expectCalls()
		v, err := vector.NewFrom(c, values, vector.WithProvider[T](e.provider()))
		if c < n {
			e.expectCode(err, fcerrors.ErrCodeCapacityExceeded, "construct %d elements with capacity %d", n, c)
			calls.verify("rejected construction with capacity %d", c)
			continue
		}
		e.require(err, "construct %d elements with capacity %d", n, c)
		calls.allocate(1).construct(n).verify("construct %d elements with capacity %d", n, c)
		e.contents(v, values, "construct with capacity %d", c)

		v.Release()
		calls.destroy(n).deallocate(1).verify("release capacity %d", c)
	}
}

// resize: growing constructs and shrinking destroys exactly the difference.
func resize[T any](e *env[T]) {
	v := e.newVector(e.capacity)
	var zero T
	var model []T
	for _, x := range []int{3, 7, 1, 8, 0, 4} {
		s := scale(x, e.capacity)
		old := v.Len()
		calls := e.expectCalls()
		e.require(v.Resize(s), "resize to %d", s)
		if s > old {
			calls.construct(s - old)
			for len(model) < s {
				model = append(model, zero)
			}
		} else {
			calls.destroy(old - s)
			model = model[:s]
		}
		calls.verify("resize from %d to %d", old, s)
		e.contents(v, model, "resize to %d", s)

		for i, p := range v.Pointers() {
			*p = Value[T](x*10 + i + 1)
			model[i] = *p
		}
	}

	calls := e.expectCalls()
	e.expectCode(v.Resize(e.capacity+1), fcerrors.ErrCodeCapacityExceeded, "resize beyond capacity")
	calls.verify("rejected resize")
	e.contents(v, model, "after rejected resize")
	v.Release()
}

// pushPop: one construction per push, one destruction per pop, and a push
// into a full vector changes nothing.
func pushPop[T any](e *env[T]) {
	c := e.capacity
	values := Values[T](1, c)
	v := e.newVector(c)

	calls := e.expectCalls()
	for i, value := range values {
		e.require(v.PushBack(value), "push_back #%d", i)
		calls.construct(1)
	}
	calls.verify("push_back %d elements", c)
	e.expect(v.Full(), "expected a full vector after %d pushes", c)

	e.expectCode(v.PushBack(Value[T](c+1)), fcerrors.ErrCodeCapacityExceeded, "push_back on a full vector")
	calls.verify("rejected push_back")
	e.contents(v, values, "after push_back")

	for n := c - 1; n >= 0; n-- {
		v.PopBack()
		calls.destroy(1)
		e.contents(v, values[:n], "pop_back to %d elements", n)
	}
	calls.verify("pop_back %d elements", c)
	v.Release()
}

// clearElements: destroys every element and keeps the storage.
func clearElements[T any](e *env[T]) {
	n := (e.capacity + 1) / 2
	v := e.filled(e.capacity, 1, n)

	calls := e.expectCalls()
	v.Clear()
	calls.destroy(n).verify("clear %d elements", n)
	e.expect(v.Empty() && v.Capacity() == e.capacity, "expected an empty vector of capacity %d, got size %d capacity %d",
		e.capacity, v.Len(), v.Capacity())

	v.Release()
	calls.deallocate(1).verify("release")
}

// access: checked and unchecked element access agree, and the checked one
// reports out-of-range indexes.
func access[T any](e *env[T]) {
	c := e.capacity
	v := e.filled(c, 1, c)
	calls := e.expectCalls()

	for i := range c {
		p, err := v.At(i)
		e.require(err, "at(%d)", i)
		e.expect(Equal(*p, Value[T](1+i)), "at(%d): expected %v, got %v", i, Value[T](1+i), *p)
		e.expect(p == v.Index(i), "at(%d) and index(%d) refer to different slots", i, i)
	}
	for _, i := range []int{-1, c, c + 1} {
		_, err := v.At(i)
		e.expectCode(err, fcerrors.ErrCodeOutOfRange, "at(%d)", i)
	}
	e.expect(Equal(*v.Front(), Value[T](1)), "front: expected %v, got %v", Value[T](1), *v.Front())
	e.expect(Equal(*v.Back(), Value[T](c)), "back: expected %v, got %v", Value[T](c), *v.Back())
	e.expect(len(v.Data()) == c, "data: expected %d elements, got %d", c, len(v.Data()))
	calls.verify("element access")

	v.Release()
}

// copyConstruct: a clone allocates its own storage and copies every element.
func copyConstruct[T any](e *env[T]) {
	c := e.capacity
	src := e.filled(c, 1, c)

	calls := e.expectCalls()
	cp, err := src.Clone()
	e.require(err, "clone")
	calls.allocate(1).construct(c).verify("clone %d elements", c)
	e.expect(cp.Capacity() == c, "clone: expected capacity %d, got %d", c, cp.Capacity())
	e.expect(cp.Provider().Equal(src.Provider()), "clone: expected a provider equal to the source's")
	e.contents(cp, Values[T](1, c), "clone")

	*src.Index(0) = Value[T](c + 100)
	e.expect(Equal(*cp.Index(0), Value[T](1)), "clone shares elements with its source")

	src.Release()
	cp.Release()
	calls.destroy(2 * c).deallocate(2).verify("release source and clone")
}

// moveConstruct: moving hands over the storage without any provider call.
func moveConstruct[T any](e *env[T]) {
	c := e.capacity
	src := e.filled(c, 1, c)

	calls := e.expectCalls()
	m := src.Move()
	calls.verify("move")
	e.expect(src.Capacity() == 0 && src.Len() == 0 && src.Data() == nil, "moved-from vector is not empty")
	e.contents(m, Values[T](1, c), "move")

	src.Release()
	m.Release()
	calls.destroy(c).deallocate(1).verify("release")
}

// copyAssign: equal capacities reuse the storage and touch only the size
// difference; different capacities replace the storage.
func copyAssign[T any](e *env[T]) {
	c := e.capacity

	dst := e.filled(c, 100, c/2)
	for _, n := range []int{c, 1, 0, c / 2} {
		src := e.filled(c, 1, n)
		old := dst.Len()
		calls := e.expectCalls()
		e.require(dst.CopyFrom(src), "copy-assign %d elements over %d", n, old)
		if n > old {
			calls.construct(n - old)
		} else {
			calls.destroy(old - n)
		}
		calls.verify("copy-assign %d elements over %d", n, old)
		e.contents(dst, Values[T](1, n), "copy-assign %d elements", n)
		src.Release()
	}

	calls := e.expectCalls()
	e.require(dst.CopyFrom(dst), "self copy-assign")
	calls.verify("self copy-assign")
	dst.Release()

	n := (c + 1) / 2
	for _, dc := range offsets(0, 2*c, 0, c/2, 2*c) {
		if dc == c {
			continue
		}
		dst := e.filled(dc, 100, dc/2)
		src := e.filled(c, 1, n)
		calls := e.expectCalls()
		e.require(dst.CopyFrom(src), "copy-assign capacity %d over capacity %d", c, dc)
		calls.destroy(dc / 2).allocate(1).construct(n)
		if dc > 0 {
			calls.deallocate(1)
		}
		calls.verify("copy-assign capacity %d over capacity %d", c, dc)
		e.expect(dst.Capacity() == c, "copy-assign: expected capacity %d, got %d", c, dst.Capacity())
		e.contents(dst, Values[T](1, n), "copy-assign over capacity %d", dc)
		dst.Release()
		src.Release()
	}
}

// moveAssign: the target releases what it held and takes over the source's
// storage.
func moveAssign[T any](e *env[T]) {
	dst := e.newVector(0)
	for _, c := range []int{e.capacity, scale(6, e.capacity), 0} {
		src := e.filled(c, 1, c/2)
		oldSize, oldCap := dst.Len(), dst.Capacity()

		calls := e.expectCalls()
		dst.MoveFrom(src)
		calls.destroy(oldSize)
		if oldCap > 0 {
			calls.deallocate(1)
		}
		calls.verify("move-assign capacity %d over capacity %d", c, oldCap)
		e.expect(dst.Capacity() == c, "move-assign: expected capacity %d, got %d", c, dst.Capacity())
		e.contents(dst, Values[T](1, c/2), "move-assign capacity %d", c)
		e.expect(src.Capacity() == 0 && src.Data() == nil, "moved-from vector is not empty")
	}
	dst.Release()
}

// assign: sequence assignment touches only the size difference, rejects an
// oversized sequence without side effects and accepts its own elements.
func assign[T any](e *env[T]) {
	c := e.capacity
	v := e.newVector(c)
	for _, x := range []int{0, 5, 3, 7, 0} {
		n := scale(x, c)
		values := Values[T](10+x, n)
		old := v.Len()
		calls := e.expectCalls()
		e.require(v.Assign(values), "assign %d elements", n)
		if n > old {
			calls.construct(n - old)
		} else {
			calls.destroy(old - n)
		}
		calls.verify("assign %d elements over %d", n, old)
		e.contents(v, values, "assign %d elements", n)
	}

	before := slices.Clone(v.Data())
	calls := e.expectCalls()
	e.expectCode(v.Assign(Values[T](1, c+1)), fcerrors.ErrCodeCapacityExceeded, "assign %d elements", c+1)
	calls.verify("rejected assign")
	e.contents(v, before, "after rejected assign")

	e.require(v.Assign(Values[T](1, c)), "assign %d elements", c)
	e.require(v.Assign(v.Data()[c/2:]), "assign own suffix")
	e.contents(v, Values[T](1+c/2, c-c/2), "assign own suffix")
	v.Release()
}

// insert: exactly one construction wherever the element goes, and a full
// vector refuses.
func insert[T any](e *env[T]) {
	c := e.capacity
	s := scale(6, c)
	inserted := Value[T](c + 13)
	for _, off := range offsets(0, s, 0, 1, s/2, s-1, s) {
		v := e.filled(c, 1, s)
		calls := e.expectCalls()
		pos, err := v.Insert(off, inserted)
		e.require(err, "insert at %d", off)
		calls.construct(1).verify("insert at %d of %d", off, s)
		e.expect(pos == off, "insert at %d: returned position %d", off, pos)
		e.contents(v, slices.Concat(Values[T](1, off), []T{inserted}, Values[T](1+off, s-off)), "insert at %d", off)
		v.Release()
	}

	full := e.filled(c, 1, c)
	calls := e.expectCalls()
	_, err := full.Insert(0, inserted)
	e.expectCode(err, fcerrors.ErrCodeCapacityExceeded, "insert into a full vector")
	calls.verify("rejected insert")
	e.contents(full, Values[T](1, c), "after rejected insert")
	full.Release()
}

// erase: exactly one destruction wherever the element was.
func erase[T any](e *env[T]) {
	c := e.capacity
	for _, s := range offsets(1, c, 1, c/2, c) {
		for _, off := range offsets(0, s-1, 0, 1, s/2, s-2, s-1) {
			v := e.filled(c, 1, s)
			calls := e.expectCalls()
			pos := v.Erase(off)
			calls.destroy(1).verify("erase at %d of %d", off, s)
			e.expect(pos == off, "erase at %d: returned position %d", off, pos)
			e.contents(v, slices.Concat(Values[T](1, off), Values[T](off+2, s-off-1)), "erase at %d of %d", off, s)
			v.Release()
		}
	}
}

// swap: storage and sizes change hands without any provider call.
func swap[T any](e *env[T]) {
	c := e.capacity
	a := e.filled(c, 1, (c+1)/2)
	for _, c2 := range []int{c / 2, c, 0, 2} {
		b := e.filled(c2, 100, c2/2)
		aCap, aData := a.Capacity(), slices.Clone(a.Data())
		bCap, bData := b.Capacity(), slices.Clone(b.Data())

		calls := e.expectCalls()
		a.Swap(b)
		calls.verify("swap with capacity %d", c2)
		e.expect(a.Capacity() == bCap && b.Capacity() == aCap, "swap with capacity %d: capacities not exchanged", c2)
		e.contents(a, bData, "swap with capacity %d", c2)
		e.contents(b, aData, "swap with capacity %d", c2)
		b.Release()
	}
	a.Release()
}

// iterate: every traversal visits the live elements in order without any
// provider call.
func iterate[T any](e *env[T]) {
	c := e.capacity
	values := Values[T](1, c)
	reversed := slices.Clone(values)
	slices.Reverse(reversed)
	v := e.filled(c, 1, c)
	calls := e.expectCalls()

	var forward, backward, constant, ranged []T
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		forward = append(forward, it.Value())
	}
	for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
		backward = append(backward, it.Value())
	}
	for it := v.CBegin(); !it.Equal(v.CEnd()); it = it.Next() {
		constant = append(constant, it.Value())
	}
	for _, x := range v.All() {
		ranged = append(ranged, x)
	}

	e.expect(SliceEqual(forward, values), "forward: expected %v, got %v", values, forward)
	e.expect(SliceEqual(backward, reversed), "reverse: expected %v, got %v", reversed, backward)
	e.expect(SliceEqual(constant, values), "const: expected %v, got %v", values, constant)
	e.expect(SliceEqual(ranged, values), "range: expected %v, got %v", values, ranged)
	e.expect(v.End().Sub(v.Begin()) == c, "end - begin: expected %d, got %d", c, v.End().Sub(v.Begin()))
	e.expect(v.REnd().Sub(v.RBegin()) == c, "rend - rbegin: expected %d, got %d", c, v.REnd().Sub(v.RBegin()))
	calls.verify("iteration")

	v.Release()
}

// rollback: a failing construction leaves the vector as it was.
func rollback[T any](e *env[T]) {
	c := e.capacity
	n := c / 2
	p := e.provider()
	v, err := vector.NewFrom(c, Values[T](1, n), vector.WithProvider[T](p))
	e.require(err, "construct %d elements", n)

	k := (c - n) / 2
	p.FailConstructAfter(k)
	calls := e.expectCalls()
	e.expectCode(v.ResizeFill(c, Value[T](c+50)), fcerrors.ErrCodeConstructFailed, "resize with failing construction")
	calls.construct(k + 1).destroy(k).verify("rolled-back resize")
	e.failedConstructs++
	e.contents(v, Values[T](1, n), "after rolled-back resize")

	src := e.filled(n+1, 1, n+1)
	p.FailConstructAfter(0)
	calls = e.expectCalls()
	e.expectCode(v.CopyFrom(src), fcerrors.ErrCodeConstructFailed, "copy-assign with failing construction")
	if src.Capacity() != c {
		calls.allocate(1).deallocate(1)
	}
	calls.construct(1).verify("rolled-back copy-assign")
	e.failedConstructs++
	e.contents(v, Values[T](1, n), "after rolled-back copy-assign")

	p.ClearFaults().FailAllocateAfter(0)
	_, err = v.Clone()
	e.expectCode(err, fcerrors.ErrCodeOutOfMemory, "clone with failing allocation")
	calls.allocate(1).verify("failed clone")
	e.failedAllocs++
	e.contents(v, Values[T](1, n), "after failed clone")

	p.ClearFaults()
	src.Release()
	v.Release()
}

// outOfMemory: a provider over budget refuses the allocation and recovers
// once storage is returned.
func outOfMemory[T any](e *env[T]) {
	c := e.capacity
	limited := memory.NewLimited[T](nil, c).WithLogger(e.log)
	p := e.instrumented(limited)

	calls := e.expectCalls()
	v, err := vector.New[T](c, vector.WithProvider[T](p))
	e.require(err, "allocate the whole budget")
	_, err = vector.New[T](1, vector.WithProvider[T](p))
	e.expectCode(err, fcerrors.ErrCodeOutOfMemory, "allocate beyond the budget")
	e.failedAllocs++
	calls.allocate(2).verify("budget exhausted")
	e.expect(limited.InUse() == c, "expected %d slots in use, got %d", c, limited.InUse())

	v.Release()
	w, err := vector.New[T](1, vector.WithProvider[T](p))
	e.require(err, "allocate after release")
	w.Release()
	calls.deallocate(1).allocate(1).deallocate(1).verify("budget recovered")
	e.expect(limited.InUse() == 0, "expected no slots in use, got %d", limited.InUse())
}
