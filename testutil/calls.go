package testutil

import (
	"testing"

	"github.com/kbukum/fcvec/memory"
)

// Calls accumulates expected provider calls for comparison with a Stats.
type Calls struct {
	t     testing.TB
	stats *memory.Stats
	want  memory.Stats
}

// ExpectCalls starts tracking against stats, expecting the counts it has now.
func ExpectCalls(t testing.TB, stats *memory.Stats) *Calls {
	return &Calls{t: t, stats: stats, want: stats.Snapshot()}
}

func (c *Calls) Allocate(n int) *Calls {
	c.want.AllocateCalls += n
	return c
}

func (c *Calls) Deallocate(n int) *Calls {
	c.want.DeallocateCalls += n
	return c
}

func (c *Calls) Construct(n int) *Calls {
	c.want.ConstructCalls += n
	return c
}

func (c *Calls) Destroy(n int) *Calls {
	c.want.DestroyCalls += n
	return c
}

// Want returns the expected counts.
func (c *Calls) Want() memory.Stats { return c.want }

// Check fails the test when the recorded counts differ from the expected ones.
func (c *Calls) Check() {
	c.t.Helper()
	if got := c.stats.Snapshot(); got != c.want {
		c.t.Errorf("provider calls: expected %v, got %v", c.want, got)
	}
}

// Require is Check that stops the test on mismatch.
func (c *Calls) Require() {
	c.t.Helper()
	if got := c.stats.Snapshot(); got != c.want {
		c.t.Fatalf("provider calls: expected %v, got %v", c.want, got)
	}
}
