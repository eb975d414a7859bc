//go:build !lockwatch_release

package lockwatch

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DebugEnabled is true when the instrumented lock is compiled in.
const DebugEnabled = true

type lockKind int

const (
	readLock lockKind = iota
	writeLock
)

func (k lockKind) String() string {
	return []string{"read", "write"}[k]
}

// RWLock wraps a value of type T behind a reader/writer lock and watches
// every acquisition for deadlock symptoms. Semantics are those of
// sync.RWMutex: any number of concurrent readers or exactly one writer.
//
// Each Read/Write call captures the caller's stack, spawns a watchdog
// goroutine, and only then blocks on the underlying mutex. If acquisition
// completes within the grace period the watchdog exits silently; otherwise
// it reports the waiting stack together with the most recent holder's
// stack. The watchdog only observes: a blocked acquisition is never
// cancelled.
type RWLock[T any] struct {
	mu  sync.RWMutex
	val T

	name   string
	grace  time.Duration
	poll   time.Duration
	logger zerolog.Logger
	out    io.Writer

	// Shared with every in-flight watchdog of this lock. Per instance:
	// two RWLocks never share diagnostic state.
	holder *holderRecord
	stats  lockStats
}

// New creates an instrumented lock around value and registers it under its
// name. The holder record starts empty: a timeout before the first
// successful acquisition reports the holder as UNKNOWN.
func New[T any](value T, opts ...Option) *RWLock[T] {
	cfg := defaultLockConfig()
	for _, o := range opts {
		o(&cfg)
	}
	l := &RWLock[T]{
		val:    value,
		name:   cfg.name,
		grace:  cfg.grace,
		poll:   cfg.poll,
		logger: cfg.logger,
		out:    cfg.out,
		holder: newHolderRecord(),
	}
	globalRegistry.register(l)
	return l
}

// Name returns the lock's registry name.
func (l *RWLock[T]) Name() string { return l.name }

// Stats returns a snapshot of the lock's counters.
func (l *RWLock[T]) Stats() Stats { return l.stats.snapshot() }

// HolderAge reports how long ago the most recent acquisition completed.
func (l *RWLock[T]) HolderAge() (time.Duration, bool) { return l.holder.age() }

// Close unregisters the lock. The lock stays usable; only the registry
// stops reporting on it.
func (l *RWLock[T]) Close() {
	globalRegistry.unregister(l.name)
}

// Read acquires a shared lock and returns a guard for the value.
// Release with Unlock, typically deferred.
func (l *RWLock[T]) Read() *ReadGuard[T] {
	l.acquire(readLock)
	l.stats.reads.Add(1)
	return &ReadGuard[T]{l: l}
}

// Write acquires the exclusive lock and returns a guard with mutable
// access to the value. Release with Unlock, typically deferred.
func (l *RWLock[T]) Write() *WriteGuard[T] {
	l.acquire(writeLock)
	l.stats.writes.Add(1)
	return &WriteGuard[T]{l: l}
}

// acquire performs one watched acquisition.
//
// The ordering here is what makes the diagnostics trustworthy: the success
// flag is set strictly before the holder record is overwritten, so a
// watchdog that still observes the flag as false knows the record has not
// been clobbered by this attempt and describes the previous holder, which
// is exactly the suspected culprit.
func (l *RWLock[T]) acquire(kind lockKind) {
	w := &watchdog{
		lockName: l.name,
		kind:     kind,
		gid:      GoroutineID(),
		caller:   callerInfo(),
		waiting:  captureStack(),
		success:  &atomic.Bool{},
		holder:   l.holder,
		stats:    &l.stats,
		grace:    l.grace,
		poll:     l.poll,
		started:  time.Now(),
		logger:   l.logger,
		out:      l.out,
	}
	go w.run()

	// The suspension being diagnosed. May block indefinitely.
	if kind == readLock {
		l.mu.RLock()
	} else {
		l.mu.Lock()
	}

	w.success.Store(true)
	l.holder.overwrite(captureStack())
}

// ReadGuard holds a shared lock until Unlock. Calling Unlock more than
// once is a no-op.
type ReadGuard[T any] struct {
	once sync.Once
	l    *RWLock[T]
}

// Value returns the protected value. Only valid before Unlock.
func (g *ReadGuard[T]) Value() T {
	return g.l.val
}

// Unlock releases the shared lock.
func (g *ReadGuard[T]) Unlock() {
	g.once.Do(g.l.mu.RUnlock)
}

// WriteGuard holds the exclusive lock until Unlock. Calling Unlock more
// than once is a no-op.
type WriteGuard[T any] struct {
	once sync.Once
	l    *RWLock[T]
}

// Value returns a pointer to the protected value. Only valid before Unlock.
func (g *WriteGuard[T]) Value() *T {
	return &g.l.val
}

// Set replaces the protected value.
func (g *WriteGuard[T]) Set(v T) {
	g.l.val = v
}

// Unlock releases the exclusive lock.
func (g *WriteGuard[T]) Unlock() {
	g.once.Do(g.l.mu.Unlock)
}
