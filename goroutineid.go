package lockwatch

import (
	"bytes"
	"runtime"
	"strconv"

	"github.com/petermattis/goid"
)

// GoroutineID returns the runtime ID of the calling goroutine. IDs appear
// in watchdog reports so the waiting side can be matched against runtime
// stack dumps.
func GoroutineID() int64 {
	if id := goid.Get(); id > 0 {
		return id
	}
	return goroutineIDFromStack()
}

// goroutineIDFromStack parses the ID out of the stack header
// ("goroutine 123 [running]:"). Slow path for platforms where the
// assembly getg extraction is unavailable.
func goroutineIDFromStack() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
