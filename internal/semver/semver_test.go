package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
	}{
		{"1.2.3", ">=1.2.0 <2.0.0", true},
		{"2.0.0", ">=1.2.0 <2.0.0", false},
		{"1.4.9", "~1.4", true},
		{"1.5.0", "~1.4", false},
		{"1.9.0", "^1.0.0", true},
	}
	for _, tc := range tests {
		t.Run(tc.version+" "+tc.constraint, func(t *testing.T) {
			v, err := ParseVersion(tc.version)
			require.NoError(t, err)
			c, err := ParseConstraint(tc.constraint)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Satisfies(v, c))
		})
	}
}

func TestSatisfies_ZeroValues(t *testing.T) {
	assert.False(t, Satisfies(Version{}, Constraint{}))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("1.2.3", "^1.0"))

	err := Check("0.9.0", "^1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsatisfied)

	err = Check("not-a-version", "^1.0")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsatisfied)

	err = Check("1.0.0", "!!bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse constraint")
}

func TestStrings(t *testing.T) {
	v, err := ParseVersion("v1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v.String())

	c, err := ParseConstraint("^1.2")
	require.NoError(t, err)
	assert.Equal(t, "^1.2", c.String())
}
