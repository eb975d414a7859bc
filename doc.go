/*
Package lockwatch provides an instrumented reader/writer lock that detects
likely deadlocks at runtime and reports the two stacks a developer needs to
diagnose them: the one currently waiting and the one that most recently
acquired the lock.

Key Features:
  - Races a per-attempt watchdog goroutine against every acquisition and
    reports when the grace period (default 3s) elapses
  - Records the stack and timestamp of the most recent successful
    acquisition, per lock instance
  - The watchdog never blocks: holder information is read with
    try-acquisition only and degrades to "UNKNOWN" rather than hang
  - A registry of all live locks for process-wide dumps
  - Compiles to a plain zero-overhead sync.RWMutex wrapper with the
    lockwatch_release build tag

Basic Usage:

	lock := lockwatch.New(map[string]int{})

	g := lock.Write()
	(*g.Value())["answer"] = 42
	g.Unlock()

	r := lock.Read()
	_ = r.Value()["answer"]
	r.Unlock()

When an acquisition has been blocked for longer than the grace period, a
report is written containing the waiting goroutine's stack, the holder's
stack (or UNKNOWN if the lock was never acquired), and roughly how long ago
the holder's stack was captured. The report is diagnostic only: the blocked
acquisition is never cancelled or interrupted.

The package also ships CleanupGuard, a small run-exactly-once scope guard
for cleanup callbacks, sharing the same resource-scoping concern.

This package is meant for development and testing builds. Production builds
should use -tags lockwatch_release, which swaps every lock for a plain
sync.RWMutex with identical Read/Write semantics and no diagnostics.
*/
package lockwatch
