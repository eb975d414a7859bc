package lockwatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureStackKeepsCallerVisible(t *testing.T) {
	stack := captureStack()

	assert.NotEmpty(t, stack)
	assert.Contains(t, stack, "stack_test.go",
		"test frames must survive filtering")
}

func TestFilterStack(t *testing.T) {
	stack := `goroutine 1 [running]:
runtime.example()
	/usr/local/go/src/runtime/debug.go:123
testing.tRunner()
	/usr/local/go/src/testing/testing.go:456
main.actualFunction()
	/path/to/main.go:789`

	filtered := filterStack([]byte(stack))

	assert.NotContains(t, filtered, "runtime.")
	assert.NotContains(t, filtered, "testing.")
	assert.Contains(t, filtered, "main.actualFunction")
}

func TestKeepFrameIgnoresCheckoutDirectory(t *testing.T) {
	// Library frames are dropped by import path even when the module
	// lives in a directory that does not mention the package name.
	assert.False(t, keepFrame(
		"github.com/Flarky55/lockwatch.captureStack",
		"/tmp/build/ws/stack.go"))
	assert.False(t, keepFrame(
		"runtime.goexit",
		"/usr/local/go/src/runtime/asm_amd64.s"))
	assert.False(t, keepFrame(
		"testing.tRunner",
		"/usr/local/go/src/testing/testing.go"))

	assert.True(t, keepFrame(
		"github.com/Flarky55/lockwatch.TestCallerInfo",
		"/tmp/build/ws/stack_test.go"))
	assert.True(t, keepFrame(
		"github.com/Flarky55/lockwatch/cmd/lockwatch/cmd.runContention",
		"/tmp/build/ws/cmd/lockwatch/cmd/contention.go"))
	assert.True(t, keepFrame(
		"main.doWork",
		"/home/user/app/main.go"))
}

func TestCallerInfo(t *testing.T) {
	info := callerInfo()

	if !strings.Contains(info, "stack_test.go") {
		t.Errorf("expected caller info to contain stack_test.go, got %s", info)
	}
	if !strings.Contains(info, "TestCallerInfo") {
		t.Errorf("expected caller info to contain TestCallerInfo, got %s", info)
	}
}
