package observability

import (
	"context"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/memory"
)

// Metered wraps a provider and records every call on ProviderMetrics. It
// adds no behavior of its own: traits, copies and failures come from the
// inner provider.
type Metered[T any] struct {
	inner   memory.Provider[T]
	metrics *ProviderMetrics
	name    string
	ctx     context.Context
}

// NewMetered wraps inner, labelling its measurements with name. A nil
// metrics records into no-op instruments.
func NewMetered[T any](inner memory.Provider[T], metrics *ProviderMetrics, name string) *Metered[T] {
	if inner == nil {
		inner = memory.Heap[T]{}
	}
	if metrics == nil {
		metrics, _ = NewProviderMetrics(noop.NewMeterProvider().Meter(InstrumentationName))
	}
	return &Metered[T]{inner: inner, metrics: metrics, name: name, ctx: context.Background()}
}

// WithContext returns a copy recording under ctx, so measurements carry the
// caller's span and baggage.
func (p *Metered[T]) WithContext(ctx context.Context) *Metered[T] {
	c := *p
	c.ctx = ctx
	return &c
}

// Inner returns the wrapped provider.
func (p *Metered[T]) Inner() memory.Provider[T] { return p.inner }

func (p *Metered[T]) Allocate(n int) ([]T, error) {
	p.metrics.RecordCall(p.ctx, p.name, OpAllocate)
	buf, err := p.inner.Allocate(n)
	if err != nil {
		p.metrics.RecordError(p.ctx, p.name, OpAllocate, errorCode(err))
		return nil, err
	}
	p.metrics.RecordSlots(p.ctx, p.name, n)
	return buf, nil
}

func (p *Metered[T]) Deallocate(buf []T, n int) {
	p.metrics.RecordCall(p.ctx, p.name, OpDeallocate)
	p.metrics.RecordSlots(p.ctx, p.name, -n)
	p.inner.Deallocate(buf, n)
}

func (p *Metered[T]) Construct(slot *T, value T) error {
	p.metrics.RecordCall(p.ctx, p.name, OpConstruct)
	if err := p.inner.Construct(slot, value); err != nil {
		p.metrics.RecordError(p.ctx, p.name, OpConstruct, errorCode(err))
		return err
	}
	return nil
}

func (p *Metered[T]) Destroy(slot *T) {
	p.metrics.RecordCall(p.ctx, p.name, OpDestroy)
	p.inner.Destroy(slot)
}

func (p *Metered[T]) Traits() memory.Traits { return p.inner.Traits() }

// SelectOnCopy wraps the inner provider's selection with the same metrics.
func (p *Metered[T]) SelectOnCopy() memory.Provider[T] {
	c := *p
	c.inner = p.inner.SelectOnCopy()
	return &c
}

// Equal reports whether other is a Metered provider over an equal inner
// provider. A bare inner provider is not equal, since releasing through it
// would skip the slot accounting.
func (p *Metered[T]) Equal(other memory.Provider[T]) bool {
	o, ok := other.(*Metered[T])
	return ok && p.inner.Equal(o.inner)
}

func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return string(errors.ErrCodeInternal)
}
