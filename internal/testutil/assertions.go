package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLinesInOrder checks that every entry of want appears in output as a
// whole line, in the given order. Other lines may be interleaved.
func AssertLinesInOrder(t *testing.T, output string, want ...string) {
	t.Helper()
	if len(want) == 0 {
		return
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	next := 0
	for _, line := range lines {
		if next < len(want) && line == want[next] {
			next++
		}
	}
	require.Equal(t, len(want), next,
		"expected line %q (and the ones after it) in order, got output:\n%s", want[min(next, len(want)-1)], output,
	)
}

// AssertLogged checks that the captured log output contains substr.
func AssertLogged(t *testing.T, logs *SafeBuffer, substr string) {
	t.Helper()
	require.Contains(t, logs.String(), substr, "expected log output to mention %q", substr)
}
