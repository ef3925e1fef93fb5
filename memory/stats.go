package memory

import "fmt"

// Stats counts provider calls. It is a plain value: compare snapshots with ==.
type Stats struct {
	AllocateCalls   int
	DeallocateCalls int
	ConstructCalls  int
	DestroyCalls    int
}

// Snapshot returns a copy of the current counts.
func (s *Stats) Snapshot() Stats { return *s }

// Reset zeroes all counts.
func (s *Stats) Reset() { *s = Stats{} }

// Outstanding returns allocations not yet returned and elements not yet destroyed.
func (s Stats) Outstanding() (buffers, elements int) {
	return s.AllocateCalls - s.DeallocateCalls, s.ConstructCalls - s.DestroyCalls
}

// Sub returns the per-counter difference s - o.
func (s Stats) Sub(o Stats) Stats {
	return Stats{
		AllocateCalls:   s.AllocateCalls - o.AllocateCalls,
		DeallocateCalls: s.DeallocateCalls - o.DeallocateCalls,
		ConstructCalls:  s.ConstructCalls - o.ConstructCalls,
		DestroyCalls:    s.DestroyCalls - o.DestroyCalls,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("allocate=%d deallocate=%d construct=%d destroy=%d",
		s.AllocateCalls, s.DeallocateCalls, s.ConstructCalls, s.DestroyCalls)
}
