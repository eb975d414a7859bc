package lockwatch

import (
	"fmt"
	"sync"
)

// Tracks messages already emitted during this process lifetime.
var warnedMessages sync.Map

// WarnOnce logs a warning only once during the process lifetime.
// Returns true if the message was logged, false if it was seen before.
func WarnOnce(msg string) bool {
	if _, loaded := warnedMessages.LoadOrStore(msg, true); loaded {
		return false
	}
	l := defaultLogger()
	l.Warn().Msg(msg)
	return true
}

// WarnOncef formats and logs a message only once during the process lifetime.
func WarnOncef(format string, args ...interface{}) bool {
	return WarnOnce(fmt.Sprintf(format, args...))
}

// ResetWarnOnce clears all tracked messages (mainly for testing).
func ResetWarnOnce() {
	warnedMessages.Range(func(key, _ any) bool {
		warnedMessages.Delete(key)
		return true
	})
}
