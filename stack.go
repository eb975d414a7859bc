package lockwatch

import (
	"fmt"
	"runtime"
	"strings"
)

// captureStack snapshots the calling goroutine's stack. The result is an
// opaque printable string, filtered of runtime noise.
func captureStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return filterStack(buf[:n])
}

// keepStackLine reports whether a stack line belongs in diagnostics.
// Test and demo frames stay visible; runtime, testing, and this package's
// own frames are noise.
func keepStackLine(line string) bool {
	if strings.Contains(line, "_test.go") ||
		strings.Contains(line, "cmd/lockwatch") {
		return true
	}
	return !strings.Contains(line, "runtime/") &&
		!strings.Contains(line, "runtime.") &&
		!strings.Contains(line, "testing/") &&
		!strings.Contains(line, "testing.") &&
		!strings.Contains(line, "lockwatch") &&
		!strings.Contains(line, "debug.Stack") &&
		!strings.Contains(line, "debug/stack")
}

// filterStack removes runtime and testing lines from stack traces to keep
// the output focused on application code.
func filterStack(stack []byte) string {
	lines := strings.Split(string(stack), "\n")
	var filtered []string
	for _, line := range lines {
		if keepStackLine(line) {
			filtered = append(filtered, line)
		}
	}
	return strings.Join(filtered, "\n")
}

// keepFrame reports whether a caller frame belongs in diagnostics.
// Decided on the function's import path, not the file path: the file path
// depends on where the module happens to be checked out. Test and demo
// frames stay visible.
func keepFrame(function, file string) bool {
	if strings.Contains(file, "_test.go") ||
		strings.Contains(function, "cmd/lockwatch") {
		return true
	}
	return !strings.HasPrefix(function, "runtime.") &&
		!strings.HasPrefix(function, "testing.") &&
		!strings.Contains(function, "Flarky55/lockwatch")
}

// callerInfo returns the nearest application frame that requested a lock,
// as "func\n\tfile:line".
func callerInfo() string {
	var pcs [32]uintptr
	n := runtime.Callers(0, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if keepFrame(frame.Function, frame.File) {
			parts := strings.Split(frame.Function, "/")
			funcName := parts[len(parts)-1]
			return fmt.Sprintf("%s\n\t%s:%d", funcName, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return "unknown"
}
