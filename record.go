package lockwatch

import (
	"sync"
	"time"
)

// holderRecord remembers who most recently completed an acquisition of one
// lock. It is shared by pointer between the lock and every watchdog the
// lock has in flight, and guarded by its own RWMutex.
//
// The watchdog side only ever uses try-acquisition on this mutex. That is
// a hard requirement: the record must never become a second thing to
// deadlock on while diagnosing the first.
type holderRecord struct {
	mu         sync.RWMutex
	stack      string
	capturedAt time.Time
	valid      bool
}

func newHolderRecord() *holderRecord {
	return &holderRecord{}
}

// overwrite replaces the record with the stack of an acquisition that just
// completed. Called from the acquiring goroutine, after the success flag
// has been set; blocking here is fine because every holder of this mutex
// is bounded.
func (r *holderRecord) overwrite(stack string) {
	now := time.Now()
	r.mu.Lock()
	r.stack = stack
	r.capturedAt = now
	r.valid = true
	r.mu.Unlock()
}

// snapshot returns the current contents for a timeout report. If the
// record can be locked exclusively its contents are taken, leaving it
// empty, so a later report on the same stuck lock does not repeat a stale
// stack. Otherwise a shared try-lock yields a possibly-stale copy.
// ok is false when the record is empty or unreadable without blocking.
func (r *holderRecord) snapshot() (stack string, capturedAt time.Time, ok bool) {
	if r.mu.TryLock() {
		stack, capturedAt, ok = r.stack, r.capturedAt, r.valid
		r.stack, r.capturedAt, r.valid = "", time.Time{}, false
		r.mu.Unlock()
		return stack, capturedAt, ok
	}
	if r.mu.TryRLock() {
		stack, capturedAt, ok = r.stack, r.capturedAt, r.valid
		r.mu.RUnlock()
		return stack, capturedAt, ok
	}
	return "", time.Time{}, false
}

// peek is a non-destructive best-effort read, used by the registry dump.
func (r *holderRecord) peek() (stack string, capturedAt time.Time, ok bool) {
	if !r.mu.TryRLock() {
		return "", time.Time{}, false
	}
	stack, capturedAt, ok = r.stack, r.capturedAt, r.valid
	r.mu.RUnlock()
	return stack, capturedAt, ok
}

// age reports how long ago the current holder's stack was captured.
func (r *holderRecord) age() (time.Duration, bool) {
	_, at, ok := r.peek()
	if !ok {
		return 0, false
	}
	return time.Since(at), true
}
