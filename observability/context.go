package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Operation holds observability context for one audit scenario.
type Operation struct {
	RunID     string
	Scenario  string
	Element   string
	Capacity  int
	StartTime time.Time
	Metrics   *ProviderMetrics
}

// NewOperation creates an operation starting now.
// If metrics is nil, metric recording is silently skipped.
func NewOperation(runID, scenario, element string, capacity int, metrics *ProviderMetrics) *Operation {
	return &Operation{
		RunID:     runID,
		Scenario:  scenario,
		Element:   element,
		Capacity:  capacity,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type operationKey struct{}

// WithOperation stores an Operation in the context.
func WithOperation(ctx context.Context, op *Operation) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// OperationFromContext retrieves the Operation from context, or nil.
func OperationFromContext(ctx context.Context) *Operation {
	if op, ok := ctx.Value(operationKey{}).(*Operation); ok {
		return op
	}
	return nil
}

// Start starts the scenario span and stores the operation in the returned
// context.
func (op *Operation) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanScenario, trace.WithAttributes(
		attribute.String(AttrRunID, op.RunID),
		attribute.String(AttrScenario, op.Scenario),
		attribute.String(AttrElement, op.Element),
		attribute.Int(AttrCapacity, op.Capacity),
	))
	return WithOperation(ctx, op), span
}

// End ends the span and records the scenario metrics.
func (op *Operation) End(ctx context.Context, span trace.Span, status string, err error) {
	duration := op.Duration()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if op.Metrics != nil {
		op.Metrics.RecordScenario(ctx, op.Scenario, status, duration)
	}
}

// Duration returns the elapsed time since the operation started.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}
