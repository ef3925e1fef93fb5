// Package bootstrap runs fcvec binaries through a uniform lifecycle.
//
// NewApp applies config defaults, validates the config and sets up the
// logger. RunTask then runs the start hooks, prints the startup summary, runs
// the task with a context cancelled on SIGINT or SIGTERM, and finally runs
// the stop hooks within the graceful timeout.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.OnStart(func(ctx context.Context) error { return initTelemetry(ctx) })
//	return app.RunTask(ctx, runAudit)
package bootstrap
