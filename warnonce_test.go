package lockwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnOnce(t *testing.T) {
	ResetWarnOnce()

	assert.True(t, WarnOnce("warnonce test message"))
	assert.False(t, WarnOnce("warnonce test message"))
	assert.True(t, WarnOnce("warnonce other message"))
}

func TestWarnOncef(t *testing.T) {
	ResetWarnOnce()

	assert.True(t, WarnOncef("formatted %d", 1))
	assert.False(t, WarnOncef("formatted %d", 1))
	assert.True(t, WarnOncef("formatted %d", 2))
}

func TestResetWarnOnce(t *testing.T) {
	ResetWarnOnce()

	assert.True(t, WarnOnce("reset me"))
	ResetWarnOnce()
	assert.True(t, WarnOnce("reset me"))
}
