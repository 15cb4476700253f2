package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDisabledWritesNothing(t *testing.T) {
	Disable()
	assert.False(t, Enabled())
	Log("state", "ignored %d", 1) // must not panic
}

func TestLogWriter(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	Log("state", "tonic=%s", "G")
	assert.Contains(t, buf.String(), "state")
	assert.Contains(t, buf.String(), "tonic=G")
}

func TestLogEvery(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	for i := 0; i < 6; i++ {
		LogEvery(3, "midi", "note")
	}
	assert.Equal(t, 2, strings.Count(buf.String(), "every 3"))
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, Enable(path))
	Log("tui", "hello")
	Disable()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging started")
	assert.Contains(t, string(data), "hello")
}
