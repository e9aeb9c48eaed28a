package unitname

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single identifier segment, e.g. `pkg` or `_private2`.
var segmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("unit name contains empty segment")
	}
	if !segmentRegex.MatchString(segment) {
		return fmt.Errorf("invalid unit name segment: %q", segment)
	}
	return nil
}

// Parse creates a Name by splitting its dotted string representation.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, fmt.Errorf("unit name cannot be empty")
	}

	parts := strings.Split(raw, Separator)
	for _, part := range parts {
		if err := validateSegment(part); err != nil {
			return Name{}, fmt.Errorf("parse %q: %w", raw, err)
		}
	}
	return newName(parts), nil
}

// MustParse is like Parse but panics on error. It is meant for constants and tests.
func MustParse(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return n
}
