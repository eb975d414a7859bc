package lockwatch

import "sync"

// CleanupGuard runs a callback exactly once when its scope ends. Construct
// it, defer Release, and the callback fires on every exit path: normal
// return, early return, or panic unwinding. Extra Release calls are no-ops.
//
//	g := lockwatch.NewCleanup(func() { conn.Close() })
//	defer g.Release()
//
// A panic inside the callback is recovered and logged; cleanup never takes
// the process down.
type CleanupGuard struct {
	once sync.Once
	fn   func()
}

// NewCleanup wraps fn in a guard. A nil fn yields a guard that does nothing.
func NewCleanup(fn func()) *CleanupGuard {
	return &CleanupGuard{fn: fn}
}

// Release runs the callback if it has not run yet.
func (g *CleanupGuard) Release() {
	g.once.Do(func() {
		if g.fn == nil {
			return
		}
		defer func() {
			if r := recover(); r != nil {
				l := defaultLogger()
				l.Error().Interface("panic", r).Msg("cleanup callback panicked")
			}
		}()
		g.fn()
	})
}
