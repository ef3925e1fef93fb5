// Package observability provides OpenTelemetry tracing and metrics for
// provider activity and audit runs.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, &cfg.Tracing)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanScenario)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg.Metrics)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewProviderMetrics(observability.Meter(observability.InstrumentationName))
//	p := observability.NewMetered[int](memory.Heap[int]{}, metrics, "heap")
//
// Every Allocate, Deallocate, Construct and Destroy that goes through p is
// counted, and the slots it holds are tracked as an up-down counter.
package observability
