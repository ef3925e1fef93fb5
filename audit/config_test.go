package audit

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/fcvec/config"
	"github.com/kbukum/fcvec/errors"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != ServiceName {
		t.Errorf("expected name %q, got %q", ServiceName, cfg.Name)
	}
	if cfg.Version == "" || cfg.Metrics.ServiceVersion != cfg.Version {
		t.Errorf("expected the build version everywhere, got %q and %q", cfg.Version, cfg.Metrics.ServiceVersion)
	}
	if cfg.Vector.Capacity != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, cfg.Vector.Capacity)
	}
	if cfg.Metrics.ServiceName != ServiceName || cfg.Tracing.ServiceName != ServiceName {
		t.Errorf("expected telemetry to use the service name, got %q and %q", cfg.Metrics.ServiceName, cfg.Tracing.ServiceName)
	}
	if cfg.Metrics.Environment != "development" || cfg.Tracing.Environment != "development" {
		t.Errorf("expected telemetry environment development, got %q and %q", cfg.Metrics.Environment, cfg.Tracing.Environment)
	}
	if cfg.Tracing.SampleRate != 1 {
		t.Errorf("expected sample rate 1, got %v", cfg.Tracing.SampleRate)
	}
	if cfg.Metrics.Enabled || cfg.Tracing.Enabled {
		t.Error("expected telemetry export to be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestConfig_VersionFlowsToTelemetry(t *testing.T) {
	cfg := Config{}
	cfg.Version = "2.3.4"
	cfg.ApplyDefaults()
	if cfg.Metrics.ServiceVersion != "2.3.4" || cfg.Tracing.ServiceVersion != "2.3.4" {
		t.Errorf("expected version 2.3.4, got %q and %q", cfg.Metrics.ServiceVersion, cfg.Tracing.ServiceVersion)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"capacity too large", func(c *Config) { c.Vector.Capacity = MaxCapacity + 1 }},
		{"negative capacity", func(c *Config) { c.Vector.Capacity = -2 }},
		{"negative budget", func(c *Config) { c.Vector.BudgetSlots = -1 }},
		{"unknown element", func(c *Config) { c.Vector.Elements = []string{"int", "float"} }},
		{"unknown scenario", func(c *Config) { c.Vector.Scenarios = []string{"resize", "shuffle"} }},
		{"bad run id", func(c *Config) { c.Vector.RunID = "not-a-uuid" }},
		{"nil run id", func(c *Config) { c.Vector.RunID = "00000000-0000-0000-0000-000000000000" }},
		{"bad endpoint", func(c *Config) { c.Metrics.Endpoint = "no port" }},
		{"bad sample rate", func(c *Config) { c.Tracing.SampleRate = 2 }},
		{"bad environment", func(c *Config) { c.Environment = "qa" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	id := uuid.New()
	cfg := Config{Vector: VectorConfig{
		Capacity:    16,
		BudgetSlots: 64,
		Elements:    []string{ElementBytes},
		Scenarios:   []string{ScenarioErase},
		RunID:       id.String(),
	}}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.RunID != id || opts.Capacity != 16 || opts.BudgetSlots != 64 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if !slices.Equal(opts.Elements, []string{ElementBytes}) || !slices.Equal(opts.Scenarios, []string{ScenarioErase}) {
		t.Errorf("unexpected selection: %v %v", opts.Elements, opts.Scenarios)
	}

	cfg.Vector.RunID = ""
	opts, err = cfg.Options()
	if err != nil || opts.RunID == uuid.Nil {
		t.Errorf("expected a generated run ID, got %v (%v)", opts.RunID, err)
	}

	cfg.Vector.RunID = uuid.Nil.String()
	if _, err := cfg.Options(); !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for the nil UUID, got %v", err)
	}
}

func TestConfig_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
name: audit-ci
environment: staging
logging:
  level: warn
  format: json
vector:
  capacity: 32
  budget_slots: 128
  elements: [int, pointer]
  scenarios: [insert, erase]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FCVAUDITTEST_VECTOR_CAPACITY", "16")

	var cfg Config
	err := config.LoadConfig(ServiceName, &cfg,
		config.WithConfigFile(path),
		config.WithEnvFile(filepath.Join(dir, ".env")),
		config.WithEnvPrefix("FCVAUDITTEST_"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "audit-ci" || cfg.Environment != "staging" {
		t.Errorf("unexpected service fields: %q %q", cfg.Name, cfg.Environment)
	}
	if cfg.Vector.Capacity != 16 {
		t.Errorf("expected the environment to override capacity to 16, got %d", cfg.Vector.Capacity)
	}
	if cfg.Vector.BudgetSlots != 128 {
		t.Errorf("expected budget 128, got %d", cfg.Vector.BudgetSlots)
	}
	if !slices.Equal(cfg.Vector.Elements, []string{"int", "pointer"}) {
		t.Errorf("unexpected elements: %v", cfg.Vector.Elements)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Metrics.Environment != "staging" {
		t.Errorf("expected telemetry environment staging, got %q", cfg.Metrics.Environment)
	}
}

func TestConfig_LoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("vector:\n  scenarios: [shuffle]\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg Config
	err := config.LoadConfig(ServiceName, &cfg,
		config.WithConfigFile(path),
		config.WithEnvFile(filepath.Join(dir, ".env")),
		config.WithEnvPrefix("FCVAUDITTEST"),
	)
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}
