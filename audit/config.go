package audit

import (
	"github.com/kbukum/fcvec/config"
	"github.com/kbukum/fcvec/observability"
	"github.com/kbukum/fcvec/validation"
	"github.com/kbukum/fcvec/version"
)

// ServiceName is the default service name of the audit binary.
const ServiceName = "fcvaudit"

// Config is the configuration of the audit binary.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Vector  VectorConfig               `yaml:"vector" mapstructure:"vector"`
	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

// VectorConfig selects what the audit exercises.
type VectorConfig struct {
	Capacity    int      `yaml:"capacity" mapstructure:"capacity" validate:"gte=1,lte=1048576"`
	BudgetSlots int      `yaml:"budget_slots" mapstructure:"budget_slots" validate:"gte=0"`
	Elements    []string `yaml:"elements" mapstructure:"elements" validate:"omitempty,dive,oneof=int string pair bytes pointer"`
	Scenarios   []string `yaml:"scenarios" mapstructure:"scenarios"`
	RunID       string   `yaml:"run_id" mapstructure:"run_id"`
}

// ApplyDefaults fills in the service name, the build version, the capacity
// and the telemetry identity, which follows the service's.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	if c.Version == "" {
		c.Version = version.Get().Short()
	}
	c.ServiceConfig.ApplyDefaults()

	if c.Vector.Capacity == 0 {
		c.Vector.Capacity = DefaultCapacity
	}

	meter := observability.DefaultMeterConfig(c.Name)
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = c.Name
	}
	if c.Metrics.ServiceVersion == "" {
		c.Metrics.ServiceVersion = c.Version
	}
	if c.Metrics.Environment == "" {
		c.Metrics.Environment = c.Environment
	}
	if c.Metrics.Endpoint == "" {
		c.Metrics.Endpoint = meter.Endpoint
	}
	if c.Metrics.Interval == 0 {
		c.Metrics.Interval = meter.Interval
	}

	tracer := observability.DefaultTracerConfig(c.Name)
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.Name
	}
	if c.Tracing.ServiceVersion == "" {
		c.Tracing.ServiceVersion = c.Version
	}
	if c.Tracing.Environment == "" {
		c.Tracing.Environment = c.Environment
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = tracer.Endpoint
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = tracer.SampleRate
	}
}

// Validate checks the service fields, the struct tags and the scenario
// selection.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	return validation.New().
		EachOneOf("vector.scenarios", c.Vector.Scenarios, ScenarioNames).
		OptionalUUID("vector.run_id", c.Vector.RunID).
		Validate()
}

// Options converts the vector section into runner options.
func (c *Config) Options() (Options, error) {
	runID, err := validation.ParseRunID("vector.run_id", c.Vector.RunID)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Capacity:    c.Vector.Capacity,
		BudgetSlots: c.Vector.BudgetSlots,
		Elements:    c.Vector.Elements,
		Scenarios:   c.Vector.Scenarios,
		RunID:       runID,
	}, nil
}
