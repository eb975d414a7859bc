package lockwatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupRunsOnceOnNormalExit(t *testing.T) {
	calls := 0
	func() {
		g := NewCleanup(func() { calls++ })
		defer g.Release()
	}()
	assert.Equal(t, 1, calls)
}

func TestCleanupRunsOnceOnEarlyReturn(t *testing.T) {
	calls := 0
	run := func(early bool) error {
		g := NewCleanup(func() { calls++ })
		defer g.Release()
		if early {
			return errors.New("bail")
		}
		return nil
	}

	require.Error(t, run(true))
	assert.Equal(t, 1, calls)
}

func TestCleanupRunsOnceOnPanicUnwind(t *testing.T) {
	calls := 0
	func() {
		defer func() { _ = recover() }()
		g := NewCleanup(func() { calls++ })
		defer g.Release()
		panic("boom")
	}()
	assert.Equal(t, 1, calls)
}

func TestCleanupNeverRunsTwice(t *testing.T) {
	calls := 0
	g := NewCleanup(func() { calls++ })
	g.Release()
	g.Release()
	g.Release()
	assert.Equal(t, 1, calls)
}

func TestCleanupSwallowsCallbackPanic(t *testing.T) {
	g := NewCleanup(func() { panic("cleanup gone wrong") })
	assert.NotPanics(t, g.Release)
}

func TestCleanupNilCallback(t *testing.T) {
	g := NewCleanup(nil)
	assert.NotPanics(t, g.Release)
}
