package memory

import (
	"fmt"

	"github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/logger"
)

// faults is shared by an Instrumented provider and the copies it selects.
// A negative remaining count disables the fault.
type faults struct {
	allocateLeft  int
	constructLeft int
}

func (f *faults) trip(left *int) bool {
	if *left < 0 {
		return false
	}
	if *left == 0 {
		return true
	}
	*left--
	return false
}

// Instrumented records every call in a Stats value before delegating to an
// inner provider. Two Instrumented providers are equal when they record into
// the same Stats.
type Instrumented[T any] struct {
	stats  *Stats
	inner  Provider[T]
	traits Traits
	faults *faults
	log    *logger.Logger
}

// NewInstrumented returns a provider counting into stats. A nil stats disables
// counting. Storage comes from Heap unless WithInner says otherwise.
func NewInstrumented[T any](stats *Stats) *Instrumented[T] {
	return &Instrumented[T]{
		stats:  stats,
		inner:  Heap[T]{},
		faults: &faults{allocateLeft: -1, constructLeft: -1},
		log:    logger.Nop(),
	}
}

// WithInner sets the provider that performs the actual work.
func (p *Instrumented[T]) WithInner(inner Provider[T]) *Instrumented[T] {
	p.inner = inner
	return p
}

// WithTraits sets the propagation policies reported by Traits.
func (p *Instrumented[T]) WithTraits(traits Traits) *Instrumented[T] {
	p.traits = traits
	return p
}

// WithLogger logs every call at debug level. A nil log disables logging.
func (p *Instrumented[T]) WithLogger(log *logger.Logger) *Instrumented[T] {
	if log == nil {
		log = logger.Nop()
	}
	p.log = log.WithComponent("memory.instrumented")
	return p
}

// FailAllocateAfter lets n more allocations succeed and fails every one after.
func (p *Instrumented[T]) FailAllocateAfter(n int) *Instrumented[T] {
	p.faults.allocateLeft = n
	return p
}

// FailConstructAfter lets n more constructions succeed and fails every one after.
func (p *Instrumented[T]) FailConstructAfter(n int) *Instrumented[T] {
	p.faults.constructLeft = n
	return p
}

// ClearFaults disables injected failures.
func (p *Instrumented[T]) ClearFaults() *Instrumented[T] {
	p.faults.allocateLeft, p.faults.constructLeft = -1, -1
	return p
}

// Stats returns the counter this provider records into.
func (p *Instrumented[T]) Stats() *Stats { return p.stats }

func (p *Instrumented[T]) Allocate(n int) ([]T, error) {
	if p.stats != nil {
		p.stats.AllocateCalls++
	}
	p.log.Debug("allocate", logger.Fields(logger.FieldSlots, n))
	if p.faults.trip(&p.faults.allocateLeft) {
		return nil, errors.OutOfMemory(n, fmt.Errorf("injected allocation failure"))
	}
	return p.inner.Allocate(n)
}

func (p *Instrumented[T]) Deallocate(buf []T, n int) {
	if p.stats != nil {
		p.stats.DeallocateCalls++
	}
	p.log.Debug("deallocate", logger.Fields(logger.FieldSlots, n))
	p.inner.Deallocate(buf, n)
}

func (p *Instrumented[T]) Construct(slot *T, value T) error {
	if p.stats != nil {
		p.stats.ConstructCalls++
	}
	if p.faults.trip(&p.faults.constructLeft) {
		p.log.Debug("construct refused")
		return errors.ConstructFailed(fmt.Errorf("injected construction failure"))
	}
	p.log.Debug("construct")
	return p.inner.Construct(slot, value)
}

func (p *Instrumented[T]) Destroy(slot *T) {
	if p.stats != nil {
		p.stats.DestroyCalls++
	}
	p.log.Debug("destroy")
	p.inner.Destroy(slot)
}

func (p *Instrumented[T]) Traits() Traits { return p.traits }

// SelectOnCopy returns a new provider recording into the same Stats.
func (p *Instrumented[T]) SelectOnCopy() Provider[T] {
	return &Instrumented[T]{
		stats:  p.stats,
		inner:  p.inner.SelectOnCopy(),
		traits: p.traits,
		faults: p.faults,
		log:    p.log,
	}
}

func (p *Instrumented[T]) Equal(other Provider[T]) bool {
	o, ok := other.(*Instrumented[T])
	return ok && o.stats == p.stats
}
