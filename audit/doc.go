// Package audit exercises vector.Vector against counting providers and
// reports every deviation from the expected provider calls.
//
// A run instantiates each scenario for each element kind (int, string, a
// small struct, []byte and *int) with a fresh memory.Stats. Scenarios record
// failed expectations instead of stopping, so one run reports every broken
// step. After a scenario completes, every allocation must have been
// deallocated and every construction destroyed, discounting the calls the
// scenario made fail on purpose.
//
// Scenario shapes are given for a capacity of 8 and scaled to the configured
// capacity, so the same scenarios run at any capacity of at least 1.
//
// Runs are traced with one span per run and one per scenario, and when
// metrics are passed to NewRunner every provider call is counted through
// observability.Metered.
//
//	runner, err := audit.NewRunner(audit.Options{Capacity: 16}, log, nil)
//	if err != nil {
//	    return err
//	}
//	report, err := runner.Run(ctx)
package audit
