package audit

import (
	"fmt"

	"github.com/kbukum/fcvec/memory"
)

// check collects the expectation failures of one scenario run.
type check struct {
	failures []string
}

func (c *check) expect(ok bool, format string, args ...any) {
	if !ok {
		c.failures = append(c.failures, fmt.Sprintf(format, args...))
	}
}

// abort stops a scenario at a step it cannot continue past. The runner
// recovers it and records the error as a failure.
type abort struct {
	err error
}

// calls accumulates the provider calls a scenario expects from a point on.
type calls struct {
	check *check
	stats *memory.Stats
	want  memory.Stats
}

func (c *calls) allocate(n int) *calls {
	c.want.AllocateCalls += n
	return c
}

func (c *calls) deallocate(n int) *calls {
	c.want.DeallocateCalls += n
	return c
}

func (c *calls) construct(n int) *calls {
	c.want.ConstructCalls += n
	return c
}

func (c *calls) destroy(n int) *calls {
	c.want.DestroyCalls += n
	return c
}

// verify records a failure when the counted calls differ from the expected
// ones. step names what was just done.
func (c *calls) verify(step string, args ...any) {
	got := c.stats.Snapshot()
	if got != c.want {
		c.check.expect(false, "%s: expected calls %v, got %v (%v)",
			fmt.Sprintf(step, args...), c.want, got, got.Sub(c.want))
	}
}
