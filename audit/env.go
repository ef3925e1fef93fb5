package audit

import (
	"context"
	"fmt"
	"slices"

	fcerrors "github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/logger"
	"github.com/kbukum/fcvec/memory"
	"github.com/kbukum/fcvec/observability"
	"github.com/kbukum/fcvec/vector"
)

// env is what a scenario runs against: a capacity, a call counter shared by
// every provider it builds, and the expectations it has recorded.
type env[T any] struct {
	ctx      context.Context
	capacity int
	budget   int
	stats    memory.Stats
	check    check
	log      *logger.Logger
	metrics  *observability.ProviderMetrics
	limited  *memory.Limited[T]

	// provider calls that failed on purpose and so have no matching release
	failedAllocs     int
	failedConstructs int
}

// provider returns a fresh provider stack counting into e.stats:
// Instrumented, then Metered when metrics are on, then the slot budget
// shared by the whole scenario when one is configured, then Heap.
func (e *env[T]) provider() *memory.Instrumented[T] {
	if e.budget <= 0 {
		return e.instrumented(memory.Heap[T]{})
	}
	if e.limited == nil {
		e.limited = memory.NewLimited[T](nil, e.budget).WithLogger(e.log)
	}
	return e.instrumented(e.limited)
}

// instrumented wraps inner in the counting layer, plus metrics when on.
func (e *env[T]) instrumented(inner memory.Provider[T]) *memory.Instrumented[T] {
	if e.metrics != nil {
		inner = observability.NewMetered(inner, e.metrics, "audit").WithContext(e.ctx)
	}
	return memory.NewInstrumented[T](&e.stats).WithInner(inner).WithLogger(e.log)
}

func (e *env[T]) require(err error, step string, args ...any) {
	if err != nil {
		panic(abort{err: fmt.Errorf("%s: %w", fmt.Sprintf(step, args...), err)})
	}
}

func (e *env[T]) expect(ok bool, format string, args ...any) {
	e.check.expect(ok, format, args...)
}

// expectCode records a failure unless err carries code.
func (e *env[T]) expectCode(err error, code fcerrors.ErrorCode, step string, args ...any) {
	if !fcerrors.IsCode(err, code) {
		e.check.expect(false, "%s: expected %s, got %v", fmt.Sprintf(step, args...), code, err)
	}
}

func (e *env[T]) expectCalls() *calls {
	return &calls{check: &e.check, stats: &e.stats, want: e.stats.Snapshot()}
}

// newVector creates an empty vector over a fresh provider stack.
func (e *env[T]) newVector(capacity int) *vector.Vector[T] {
	v, err := vector.New[T](capacity, vector.WithProvider[T](e.provider()))
	e.require(err, "new vector of capacity %d", capacity)
	return v
}

// filled creates a vector of the given capacity holding Values(first, n).
func (e *env[T]) filled(capacity, first, n int) *vector.Vector[T] {
	v, err := vector.NewFrom(capacity, Values[T](first, n), vector.WithProvider[T](e.provider()))
	e.require(err, "new vector of capacity %d with %d elements", capacity, n)
	return v
}

// contents records a failure unless v holds exactly want.
func (e *env[T]) contents(v *vector.Vector[T], want []T, step string, args ...any) {
	if v.Len() != len(want) || !SliceEqual(v.Data(), want) {
		e.check.expect(false, "%s: expected elements %v, got %v", fmt.Sprintf(step, args...), want, v.Data())
	}
}

// leaks reports provider calls without a matching release, discounting calls
// that failed on purpose.
func (e *env[T]) leaks() error {
	buffers, elements := e.stats.Outstanding()
	buffers -= e.failedAllocs
	elements -= e.failedConstructs
	if buffers == 0 && elements == 0 {
		return nil
	}
	return fmt.Errorf("%d buffers and %d elements were never released", buffers, elements)
}

// offsets returns the distinct values of candidates within [lo, hi], sorted.
func offsets(lo, hi int, candidates ...int) []int {
	var out []int
	for _, c := range candidates {
		if c >= lo && c <= hi && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}

// scale maps x, given for a capacity of 8, onto capacity.
func scale(x, capacity int) int {
	return x * capacity / 8
}
