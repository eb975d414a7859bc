// registry.go keeps track of all live instrumented locks so a single dump
// can show every lock in the process alongside a timeout report.
package lockwatch

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// lockEntry is the registry's view of a lock, independent of its value type.
type lockEntry interface {
	Name() string
	Stats() Stats
	HolderAge() (time.Duration, bool)
}

var globalRegistry = &registry{
	locks: make(map[string]lockEntry),
}

type registry struct {
	sync.RWMutex
	locks map[string]lockEntry
}

func (r *registry) register(e lockEntry) {
	r.Lock()
	defer r.Unlock()
	r.locks[e.Name()] = e
}

func (r *registry) unregister(name string) {
	r.Lock()
	defer r.Unlock()
	delete(r.locks, name)
}

// all returns the registered locks sorted by name for stable output.
func (r *registry) all() []lockEntry {
	r.RLock()
	defer r.RUnlock()

	entries := make([]lockEntry, 0, len(r.locks))
	for _, e := range r.locks {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries
}

// DumpAllLocks renders one line per registered lock: its counters and,
// best-effort, how long ago its current holder record was captured.
// Holder ages read with try-locks only, so the dump is safe to call from
// a watchdog that is already diagnosing a hang.
func DumpAllLocks() string {
	entries := globalRegistry.all()

	var out strings.Builder
	out.WriteString("=== lockwatch registry ===\n")
	out.WriteString(fmt.Sprintf("registered locks: %d\n", len(entries)))
	for _, e := range entries {
		s := e.Stats()
		out.WriteString(fmt.Sprintf("- %s: reads=%d writes=%d timeouts=%d",
			e.Name(), s.Reads, s.Writes, s.Timeouts))
		if age, ok := e.HolderAge(); ok {
			out.WriteString(fmt.Sprintf(" last-acquired=%s ago", coarseDuration(age)))
		} else {
			out.WriteString(" last-acquired=n/a")
		}
		out.WriteString("\n")
	}
	return out.String()
}
