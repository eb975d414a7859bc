//go:build !lockwatch_release

package lockwatch

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// watchdog observes one acquisition attempt from its own goroutine. It
// terminates in one of two ways: the success flag flips before the grace
// deadline (silent), or the deadline elapses and exactly one report is
// emitted. It never cancels the attempt and never blocks on shared state.
type watchdog struct {
	lockName string
	kind     lockKind
	gid      int64
	caller   string
	waiting  string // stack captured when the attempt began
	success  *atomic.Bool
	holder   *holderRecord
	stats    *lockStats
	grace    time.Duration
	poll     time.Duration
	started  time.Time
	logger   zerolog.Logger
	out      io.Writer
}

func (w *watchdog) run() {
	for {
		if w.success.Load() {
			return
		}
		if time.Since(w.started) >= w.grace {
			w.report()
			return
		}
		time.Sleep(w.poll)
	}
}

func (w *watchdog) report() {
	w.stats.timeouts.Add(1)

	w.logger.Warn().
		Str("lock", w.lockName).
		Str("kind", w.kind.String()).
		Int64("goroutine", w.gid).
		Dur("waited", time.Since(w.started)).
		Msg("potential deadlock")

	fmt.Fprintf(w.out, "\n=== POTENTIAL DEADLOCK on %q ===\n", w.lockName)
	fmt.Fprintf(w.out, "%s lock requested by goroutine %d:\n%s\n", w.kind, w.gid, w.caller)
	fmt.Fprintf(w.out, "Waiting stack:\n%s\n", w.waiting)

	stack, capturedAt, ok := w.holder.snapshot()
	if !ok {
		fmt.Fprintf(w.out, "Locked by: UNKNOWN\n")
	} else {
		fmt.Fprintf(w.out, "Locked %s before by:\n%s\n",
			coarseDuration(holderElapsed(capturedAt, w.grace)), stack)
	}
	fmt.Fprint(w.out, DumpAllLocks())
	fmt.Fprintf(w.out, "=== END POTENTIAL DEADLOCK on %q ===\n\n", w.lockName)
}

// holderElapsed is the figure shown next to the holder's stack: how long
// ago the capture happened, measured from when this watchdog started
// waiting. Clamped at zero for captures that landed mid-wait; the number
// is a diagnostic approximation, not an exact hold duration.
func holderElapsed(capturedAt time.Time, grace time.Duration) time.Duration {
	d := time.Since(capturedAt.Add(grace))
	if d < 0 {
		return 0
	}
	return d
}
