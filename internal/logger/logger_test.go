package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_BuildsLogger(t *testing.T) {
	for _, json := range []bool{false, true} {
		for _, debug := range []bool{false, true} {
			log, err := New(json, debug)
			require.NoError(t, err)
			assert.NotNil(t, log)
		}
	}
}

func TestNew_DebugLevel(t *testing.T) {
	log, err := New(false, true)
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InfoLevelByDefault(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestTruncateForLog_ShortString(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 80))
}

func TestTruncateForLog_Truncates(t *testing.T) {
	assert.Equal(t, "abcde...", TruncateForLog("abcdefghij", 5))
}

func TestTruncateForLog_MultibyteSafe(t *testing.T) {
	// Truncation counts runes, not bytes.
	assert.Equal(t, "가나다...", TruncateForLog("가나다라마바사", 3))
}

func TestTruncateForLog_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "text", TruncateForLog("  text  ", 80))
}

func TestTruncateForLog_ZeroLimit(t *testing.T) {
	assert.Empty(t, TruncateForLog("anything", 0))
}
