package lockwatch

import "sync/atomic"

// Stats is a snapshot of one lock's counters.
type Stats struct {
	Reads    uint64 // completed read acquisitions
	Writes   uint64 // completed write acquisitions
	Timeouts uint64 // watchdog reports emitted
}

type lockStats struct {
	reads    atomic.Uint64
	writes   atomic.Uint64
	timeouts atomic.Uint64
}

func (s *lockStats) snapshot() Stats {
	return Stats{
		Reads:    s.reads.Load(),
		Writes:   s.writes.Load(),
		Timeouts: s.timeouts.Load(),
	}
}
