package lockwatch

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaultLoggerConcurrentWithUse(t *testing.T) {
	ResetWarnOnce()
	defer SetDefaultLogger(defaultLogger())
	SetDefaultLogger(zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				SetDefaultLogger(zerolog.Nop())
				return
			}
			// Readers of the package logger, racing the swaps.
			WarnOncef("concurrent logger use %d", i)
			g := NewCleanup(func() { panic(fmt.Sprintf("boom %d", i)) })
			g.Release()
		}(i)
	}
	wg.Wait()
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	cfg := defaultLockConfig()
	before := cfg

	for _, o := range []Option{
		WithName(""),
		WithGrace(0),
		WithGrace(-time.Second),
		WithPoll(0),
		WithWriter(nil),
	} {
		o(&cfg)
	}

	assert.Equal(t, before.name, cfg.name)
	assert.Equal(t, before.grace, cfg.grace)
	assert.Equal(t, before.poll, cfg.poll)
	assert.NotNil(t, cfg.out)
}
