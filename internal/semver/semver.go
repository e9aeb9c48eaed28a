// Package semver checks unit versions against import constraints.
package semver

import (
	"errors"
	"fmt"

	mm "github.com/Masterminds/semver/v3"
)

// ErrUnsatisfied is returned by Check when a version falls outside a
// constraint.
var ErrUnsatisfied = errors.New("version constraint not satisfied")

// Version is a semantic version.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3.
type Version struct {
	v *mm.Version
}

// Constraint is a semantic version constraint.
//
// Examples:
// - ">=1.2.0 <2.0.0"
// - "^1.0.0"
// - "~1.4"
type Constraint struct {
	c   *mm.Constraints
	raw string
}

func ParseVersion(raw string) (Version, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("semver: parse version %q: %w", raw, err)
	}
	return Version{v: v}, nil
}

func ParseConstraint(raw string) (Constraint, error) {
	c, err := mm.NewConstraint(raw)
	if err != nil {
		return Constraint{}, fmt.Errorf("semver: parse constraint %q: %w", raw, err)
	}
	return Constraint{c: c, raw: raw}, nil
}

func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

func (c Constraint) String() string { return c.raw }

func Satisfies(v Version, c Constraint) bool {
	if v.v == nil || c.c == nil {
		return false
	}
	return c.c.Check(v.v)
}

// Check parses both strings and reports whether version meets constraint.
// Parse failures are returned as-is; a mismatch wraps ErrUnsatisfied.
func Check(version, constraint string) error {
	c, err := ParseConstraint(constraint)
	if err != nil {
		return err
	}
	v, err := ParseVersion(version)
	if err != nil {
		return err
	}
	if !Satisfies(v, c) {
		return fmt.Errorf("%w: %s does not match %q", ErrUnsatisfied, v, constraint)
	}
	return nil
}
