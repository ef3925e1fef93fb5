package audit

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	fcerrors "github.com/kbukum/fcvec/errors"
	"github.com/kbukum/fcvec/logger"
	"github.com/kbukum/fcvec/memory"
	"github.com/kbukum/fcvec/observability"
	"github.com/kbukum/fcvec/validation"
)

const (
	// DefaultCapacity is the vector capacity used when none is configured.
	DefaultCapacity = 8
	// MaxCapacity bounds the configurable capacity.
	MaxCapacity = 1 << 20
)

// Scenario result status.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Options selects what a run exercises. Empty Elements or Scenarios mean all
// of them; a nil RunID gets a random one.
type Options struct {
	Capacity    int
	BudgetSlots int
	Elements    []string
	Scenarios   []string
	RunID       uuid.UUID
}

func (o *Options) applyDefaults() {
	if o.Capacity == 0 {
		o.Capacity = DefaultCapacity
	}
	if len(o.Elements) == 0 {
		o.Elements = ElementKinds
	}
	if len(o.Scenarios) == 0 {
		o.Scenarios = ScenarioNames
	}
	if o.RunID == uuid.Nil {
		o.RunID = uuid.New()
	}
}

func (o *Options) validate() error {
	minBudget := BudgetFactor * o.Capacity
	return validation.New().
		Range("capacity", o.Capacity, 1, MaxCapacity).
		Min("budget_slots", o.BudgetSlots, 0).
		Custom(o.BudgetSlots == 0 || o.BudgetSlots >= minBudget,
			"budget_slots", fmt.Sprintf("must be 0 or at least %d", minBudget)).
		EachOneOf("elements", o.Elements, ElementKinds).
		EachOneOf("scenarios", o.Scenarios, ScenarioNames).
		Validate()
}

// Result is the outcome of one scenario for one element kind.
type Result struct {
	Scenario string        `json:"scenario"`
	Element  string        `json:"element"`
	Status   string        `json:"status"`
	Failures []string      `json:"failures,omitempty"`
	Stats    memory.Stats  `json:"stats"`
	Duration time.Duration `json:"duration"`
}

// Passed reports whether every expectation of the scenario held.
func (r Result) Passed() bool { return r.Status == StatusPassed }

// Report collects the results of a run.
type Report struct {
	RunID    uuid.UUID     `json:"run_id"`
	Capacity int           `json:"capacity"`
	Results  []Result      `json:"results"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether the run completed without a failed scenario.
func (r *Report) Passed() bool { return len(r.Failed()) == 0 }

// Runner runs the selected scenarios for every selected element kind, each
// against fresh counting providers, and checks that nothing leaks.
type Runner struct {
	opts    Options
	log     *logger.Logger
	metrics *observability.ProviderMetrics
}

// NewRunner validates opts and returns a runner. A nil log discards output;
// nil metrics disable metric recording.
func NewRunner(opts Options, log *logger.Logger, metrics *observability.ProviderMetrics) (*Runner, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		opts:    opts,
		log:     log.WithComponent("audit"),
		metrics: metrics,
	}, nil
}

// Options returns the options after defaults were applied.
func (r *Runner) Options() Options { return r.opts }

// Run executes the scenarios in order. Cancelling ctx stops the run between
// scenarios and returns the partial report with ctx's error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: r.opts.RunID, Capacity: r.opts.Capacity, Started: time.Now()}
	runID := report.RunID.String()

	ctx, span := observability.StartSpan(ctx, observability.SpanRun, trace.WithAttributes(
		attribute.String(observability.AttrRunID, runID),
		attribute.Int(observability.AttrCapacity, r.opts.Capacity),
	))
	defer span.End()

	r.log.Info("audit started", logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldCapacity, r.opts.Capacity,
		"elements", r.opts.Elements,
		"scenarios", len(r.opts.Scenarios),
	))

	for _, kind := range r.opts.Elements {
		for _, name := range r.opts.Scenarios {
			if err := ctx.Err(); err != nil {
				report.Duration = time.Since(report.Started)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				r.log.Warn("audit cancelled", logger.Fields(logger.FieldRunID, runID, "completed", len(report.Results)))
				return report, err
			}
			report.Results = append(report.Results, r.run(ctx, kind, name))
		}
	}
	report.Duration = time.Since(report.Started)

	failed := len(report.Failed())
	status := StatusPassed
	if failed > 0 {
		status = StatusFailed
		span.SetStatus(codes.Error, fmt.Sprintf("%d scenarios failed", failed))
	}
	span.SetAttributes(attribute.String(observability.AttrStatus, status))

	fields := logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldStatus, status,
		logger.FieldDuration, report.Duration.Milliseconds(),
		"scenarios", len(report.Results),
		"failed", failed,
	)
	if failed > 0 {
		r.log.Warn("audit finished", fields)
	} else {
		r.log.Info("audit finished", fields)
	}
	return report, nil
}

func (r *Runner) run(ctx context.Context, kind, name string) Result {
	switch kind {
	case ElementInt:
		return runScenario[int](ctx, r, kind, name)
	case ElementString:
		return runScenario[string](ctx, r, kind, name)
	case ElementPair:
		return runScenario[Pair](ctx, r, kind, name)
	case ElementBytes:
		return runScenario[[]byte](ctx, r, kind, name)
	case ElementPointer:
		return runScenario[*int](ctx, r, kind, name)
	}
	panic(fmt.Sprintf("audit: unknown element kind %q", kind))
}

func runScenario[T any](ctx context.Context, r *Runner, kind, name string) Result {
	sc := scenarios[T]()[slices.Index(ScenarioNames, name)]

	op := observability.NewOperation(r.opts.RunID.String(), name, kind, r.opts.Capacity, r.metrics)
	ctx, span := op.Start(ctx)

	e := &env[T]{
		ctx:      ctx,
		capacity: r.opts.Capacity,
		budget:   r.opts.BudgetSlots,
		log:      r.log,
		metrics:  r.metrics,
	}
	if err := execute(e, sc.run); err != nil {
		e.check.failures = append(e.check.failures, err.Error())
	} else if err := e.leaks(); err != nil {
		e.check.failures = append(e.check.failures, err.Error())
	}

	status := StatusPassed
	var failure error
	if len(e.check.failures) > 0 {
		status = StatusFailed
		failure = fmt.Errorf("%s", strings.Join(e.check.failures, "; "))
	}
	op.End(ctx, span, status, failure)

	result := Result{
		Scenario: name,
		Element:  kind,
		Status:   status,
		Failures: e.check.failures,
		Stats:    e.stats,
		Duration: op.Duration(),
	}

	fields := logger.Fields(
		logger.FieldScenario, name,
		"element", kind,
		logger.FieldStatus, status,
		"calls", e.stats.String(),
	)
	if failure != nil {
		r.log.WithError(failure).Warn("scenario failed", fields)
	} else {
		r.log.Debug("scenario passed", fields)
	}
	return result
}

// execute runs fn, turning an abort or any other panic into an error.
func execute[T any](e *env[T], fn func(*env[T])) (err error) {
	defer func() {
		switch p := recover().(type) {
		case nil:
		case abort:
			err = p.err
		default:
			err = fcerrors.Internal(fmt.Errorf("panic: %v", p))
		}
	}()
	fn(e)
	return nil
}
