package unitname

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPackage is returned for a relative request without a caller package.
	ErrNoPackage = errors.New("relative import requires a known caller package")
	// ErrBeyondTopLevel is returned when the level climbs past the root container.
	ErrBeyondTopLevel = errors.New("relative import climbs beyond the top-level container")
	// ErrInvalidLevel is returned for negative levels.
	ErrInvalidLevel = errors.New("relative level must not be negative")
)

// Absolute turns a possibly relative request into an absolute Name.
//
// Level 0 parses target as-is. Level 1 anchors at callerPackage itself, level 2
// at its parent, and so on. An empty target names the anchor container.
func Absolute(target string, level int, callerPackage string) (Name, error) {
	if level < 0 {
		return Name{}, ErrInvalidLevel
	}
	if level == 0 {
		return Parse(target)
	}
	if callerPackage == "" {
		return Name{}, ErrNoPackage
	}

	pkg, err := Parse(callerPackage)
	if err != nil {
		return Name{}, fmt.Errorf("caller package: %w", err)
	}
	if level > pkg.Len() {
		return Name{}, fmt.Errorf("%w: level %d from %q", ErrBeyondTopLevel, level, callerPackage)
	}

	base := newName(pkg.segments[: pkg.Len()-(level-1) : pkg.Len()-(level-1)])
	if target == "" {
		return base, nil
	}
	rel, err := Parse(target)
	if err != nil {
		return Name{}, err
	}
	segments := make([]string, 0, base.Len()+rel.Len())
	segments = append(segments, base.segments...)
	segments = append(segments, rel.segments...)
	return newName(segments), nil
}
