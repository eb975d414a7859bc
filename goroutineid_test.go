package lockwatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineIDNonZeroAndStable(t *testing.T) {
	id1 := GoroutineID()
	id2 := GoroutineID()
	assert.NotZero(t, id1)
	assert.Equal(t, id1, id2, "same goroutine must keep its ID")
}

func TestGoroutineIDDistinctAcrossGoroutines(t *testing.T) {
	const n = 16

	var mu sync.Mutex
	seen := make(map[int64]struct{}, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := GoroutineID()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "every goroutine gets its own ID")
}

func TestGoroutineIDFallbackMatchesFastPath(t *testing.T) {
	assert.Equal(t, GoroutineID(), goroutineIDFromStack())
}
