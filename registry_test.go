//go:build !lockwatch_release

package lockwatch

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryTracksLockLifecycle(t *testing.T) {
	lock := New(0, WithName("registry-test-lock"), WithLogger(zerolog.Nop()))

	assert.Contains(t, DumpAllLocks(), "registry-test-lock")

	lock.Close()
	assert.NotContains(t, DumpAllLocks(), "registry-test-lock")
}

func TestRegistryGeneratesUniqueNames(t *testing.T) {
	a := New(0, WithLogger(zerolog.Nop()))
	b := New(0, WithLogger(zerolog.Nop()))
	defer a.Close()
	defer b.Close()

	require.NotEmpty(t, a.Name())
	require.NotEmpty(t, b.Name())
	assert.NotEqual(t, a.Name(), b.Name())
}

func TestDumpShowsCountersAndHolderAge(t *testing.T) {
	lock := New(0, WithName("registry-dump-lock"), WithLogger(zerolog.Nop()))
	defer lock.Close()

	line := dumpLineFor(t, "registry-dump-lock")
	assert.Contains(t, line, "reads=0 writes=0 timeouts=0")
	assert.Contains(t, line, "last-acquired=n/a")

	g := lock.Write()
	g.Unlock()
	time.Sleep(10 * time.Millisecond)

	line = dumpLineFor(t, "registry-dump-lock")
	assert.Contains(t, line, "writes=1")
	assert.Contains(t, line, "ago")
}

func dumpLineFor(t *testing.T, name string) string {
	t.Helper()
	for _, line := range strings.Split(DumpAllLocks(), "\n") {
		if strings.Contains(line, name) {
			return line
		}
	}
	t.Fatalf("no dump line for %q", name)
	return ""
}
