//go:build lockwatch_release

package lockwatch

import (
	"sync"
	"time"
)

// DebugEnabled is false in release builds: locks are plain sync.RWMutex
// wrappers with no watchdogs, no holder records, and no registry entries.
const DebugEnabled = false

// RWLock wraps a value of type T behind a reader/writer lock. This is the
// release variant: identical Read/Write semantics to the instrumented
// build and nothing else.
type RWLock[T any] struct {
	mu   sync.RWMutex
	val  T
	name string
}

// New creates a plain lock around value. Options other than WithName are
// accepted and ignored.
func New[T any](value T, opts ...Option) *RWLock[T] {
	cfg := defaultLockConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &RWLock[T]{val: value, name: cfg.name}
}

// Name returns the lock's name.
func (l *RWLock[T]) Name() string { return l.name }

// Stats always returns zeroes; release locks do not count.
func (l *RWLock[T]) Stats() Stats { return Stats{} }

// HolderAge always reports no holder; release locks keep no records.
func (l *RWLock[T]) HolderAge() (time.Duration, bool) { return 0, false }

// Close is a no-op; release locks are not registered.
func (l *RWLock[T]) Close() {}

// Read acquires a shared lock and returns a guard for the value.
func (l *RWLock[T]) Read() *ReadGuard[T] {
	l.mu.RLock()
	return &ReadGuard[T]{l: l}
}

// Write acquires the exclusive lock and returns a guard with mutable
// access to the value.
func (l *RWLock[T]) Write() *WriteGuard[T] {
	l.mu.Lock()
	return &WriteGuard[T]{l: l}
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
