// Command fcvaudit runs the fixed-capacity vector audit and reports every
// scenario whose provider calls, contents or error codes deviate from the
// expected ones.
//
// Configuration comes from config.yml and .env files, FCVAUDIT_* environment
// variables and finally the flags:
//
//	fcvaudit -capacity 64 -elements int,pair -scenarios insert,erase
//
// The exit status is 0 when every scenario passed, 1 when one failed or the
// run could not complete, and 2 for invalid flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kbukum/fcvec/audit"
	"github.com/kbukum/fcvec/bootstrap"
	"github.com/kbukum/fcvec/config"
	"github.com/kbukum/fcvec/observability"
	"github.com/kbukum/fcvec/version"
)

var errAuditFailed = errors.New("audit failed")

type flags struct {
	configFile string
	envFile    string
	capacity   int
	budget     int
	elements   string
	scenarios  string
	runID      string
	json       bool
	version    bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet(audit.ServiceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configFile, "config", "", "config file (default: searched next to the binary)")
	fs.StringVar(&f.envFile, "env", "", ".env file (default: searched next to the binary)")
	fs.IntVar(&f.capacity, "capacity", 0, "vector capacity, overrides vector.capacity")
	fs.IntVar(&f.budget, "budget", -1, "shared slot budget, overrides vector.budget_slots (0 disables)")
	fs.StringVar(&f.elements, "elements", "", "comma-separated element kinds: "+strings.Join(audit.ElementKinds, ","))
	fs.StringVar(&f.scenarios, "scenarios", "", "comma-separated scenarios: "+strings.Join(audit.ScenarioNames, ","))
	fs.StringVar(&f.runID, "run-id", "", "run ID (UUID), random when empty")
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// apply overrides the loaded config with the flags that were set.
func (f *flags) apply(cfg *audit.Config) {
	if f.capacity != 0 {
		cfg.Vector.Capacity = f.capacity
	}
	if f.budget >= 0 {
		cfg.Vector.BudgetSlots = f.budget
	}
	if f.elements != "" {
		cfg.Vector.Elements = splitList(f.elements)
	}
	if f.scenarios != "" {
		cfg.Vector.Scenarios = splitList(f.scenarios)
	}
	if f.runID != "" {
		cfg.Vector.RunID = f.runID
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if f.version {
		fmt.Fprintln(stdout, version.Get())
		return 0
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	app, err := bootstrap.NewApp(cfg, bootstrap.WithOutput(stderr))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	trackSettings(app.Summary, cfg, opts)

	var metrics *observability.ProviderMetrics
	app.OnStart(func(ctx context.Context) error {
		m, err := initTelemetry(ctx, app, cfg)
		metrics = m
		return err
	})

	err = app.RunTask(ctx, func(ctx context.Context) error {
		runner, err := audit.NewRunner(opts, app.Logger, metrics)
		if err != nil {
			return err
		}
		report, err := runner.Run(ctx)
		if report != nil {
			if werr := writeReport(stdout, report, f.json); werr != nil {
				return werr
			}
		}
		if err != nil {
			return err
		}
		if !report.Passed() {
			return errAuditFailed
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errAuditFailed) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

func loadConfig(f *flags) (*audit.Config, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix("FCVAUDIT")}
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}

	cfg := &audit.Config{}
	if err := config.LoadConfig(audit.ServiceName, cfg, opts...); err != nil {
		return nil, err
	}
	f.apply(cfg)
	return cfg, nil
}

func trackSettings(s *bootstrap.Summary, cfg *audit.Config, opts audit.Options) {
	s.TrackSetting("run_id", opts.RunID)
	s.TrackSetting("capacity", opts.Capacity)
	if opts.BudgetSlots > 0 {
		s.TrackSetting("budget_slots", opts.BudgetSlots)
	}
	if len(opts.Elements) > 0 {
		s.TrackSetting("elements", strings.Join(opts.Elements, ","))
	}
	if len(opts.Scenarios) > 0 {
		s.TrackSetting("scenarios", strings.Join(opts.Scenarios, ","))
	}
	s.TrackExporter("metrics", cfg.Metrics.Endpoint, cfg.Metrics.Enabled)
	s.TrackExporter("tracing", cfg.Tracing.Endpoint, cfg.Tracing.Enabled)
}

// initTelemetry starts the enabled exporters and registers their shutdown.
// Provider metrics are only collected when metric export is on.
func initTelemetry(ctx context.Context, app *bootstrap.App[*audit.Config], cfg *audit.Config) (*observability.ProviderMetrics, error) {
	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, &cfg.Tracing)
		if err != nil {
			return nil, fmt.Errorf("tracing: %w", err)
		}
		app.OnStop(tp.Shutdown)
	}
	if !cfg.Metrics.Enabled {
		return nil, nil
	}
	mp, err := observability.InitMeter(ctx, &cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	app.OnStop(mp.Shutdown)
	return observability.NewProviderMetrics(mp.Meter(observability.InstrumentationName))
}
