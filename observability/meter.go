package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/fcvec/logger"
)

// InstrumentationName names the meter and tracer of this module.
const InstrumentationName = "github.com/kbukum/fcvec"

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// Enabled turns metric export on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (development, staging, production).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The provider should be shut down on exit to flush the last
// export.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Provider operations as recorded in the "operation" attribute.
const (
	OpAllocate   = "allocate"
	OpDeallocate = "deallocate"
	OpConstruct  = "construct"
	OpDestroy    = "destroy"
)

// ProviderMetrics holds the instruments for provider calls and audit runs.
type ProviderMetrics struct {
	callTotal        metric.Int64Counter
	slotsInUse       metric.Int64UpDownCounter
	errorTotal       metric.Int64Counter
	scenarioTotal    metric.Int64Counter
	scenarioDuration metric.Float64Histogram
}

// NewProviderMetrics creates the instruments on the given meter.
func NewProviderMetrics(meter metric.Meter) (*ProviderMetrics, error) {
	callTotal, err := meter.Int64Counter("fcvec.provider.calls",
		metric.WithDescription("Provider calls by provider and operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fcvec.provider.calls counter: %w", err)
	}

	slotsInUse, err := meter.Int64UpDownCounter("fcvec.provider.slots",
		metric.WithDescription("Slots currently allocated through the provider"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fcvec.provider.slots counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("fcvec.provider.errors",
		metric.WithDescription("Failed provider calls by operation and error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fcvec.provider.errors counter: %w", err)
	}

	scenarioTotal, err := meter.Int64Counter("fcvec.audit.scenarios",
		metric.WithDescription("Audit scenarios run, by scenario and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fcvec.audit.scenarios counter: %w", err)
	}

	scenarioDuration, err := meter.Float64Histogram("fcvec.audit.scenario.duration",
		metric.WithDescription("Duration of audit scenarios in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fcvec.audit.scenario.duration histogram: %w", err)
	}

	return &ProviderMetrics{
		callTotal:        callTotal,
		slotsInUse:       slotsInUse,
		errorTotal:       errorTotal,
		scenarioTotal:    scenarioTotal,
		scenarioDuration: scenarioDuration,
	}, nil
}

// RecordCall counts one provider call.
func (m *ProviderMetrics) RecordCall(ctx context.Context, provider, operation string) {
	m.callTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
	))
}

// RecordSlots adjusts the allocated slot count by delta.
func (m *ProviderMetrics) RecordSlots(ctx context.Context, provider string, delta int) {
	m.slotsInUse.Add(ctx, int64(delta), metric.WithAttributes(
		attribute.String("provider", provider),
	))
}

// RecordError counts a failed provider call.
func (m *ProviderMetrics) RecordError(ctx context.Context, provider, operation, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("operation", operation),
		attribute.String("code", code),
	))
}

// RecordScenario records a finished audit scenario.
func (m *ProviderMetrics) RecordScenario(ctx context.Context, scenario, status string, duration time.Duration) {
	m.scenarioTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scenario", scenario),
		attribute.String("status", status),
	))
	m.scenarioDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("scenario", scenario),
	))
}
