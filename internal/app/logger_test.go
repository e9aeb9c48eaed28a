package app

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/testutil"
)

func TestNewLogger_JSON(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	logger := newLogger("warn", "json", buf)

	logger.Info("hidden")
	logger.Warn("shown", "unit", "a.b")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "a.b", entry["unit"])
}

func TestNewLogger_Text(t *testing.T) {
	buf := &testutil.SafeBuffer{}
	logger := newLogger("debug", "text", buf)

	logger.Debug("resolving", "unit", "pkg")

	out := buf.String()
	assert.Contains(t, out, "hclimport")
	assert.Contains(t, out, "resolving")
	assert.Contains(t, out, "unit=pkg")
}
