package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a resolution failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindParentFailed
	KindInitializationFailed
	KindInvalidRelative
	KindAttributeNotFound
	KindInvalidName
)

var (
	ErrNotFound             = errors.New("unit not found")
	ErrParentFailed         = errors.New("parent unit failed")
	ErrInitializationFailed = errors.New("unit initialization failed")
	ErrInvalidRelative      = errors.New("invalid relative import")
	ErrAttributeNotFound    = errors.New("selected name not found")
	ErrInvalidName          = errors.New("invalid unit name")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindParentFailed:
		return ErrParentFailed
	case KindInitializationFailed:
		return ErrInitializationFailed
	case KindInvalidRelative:
		return ErrInvalidRelative
	case KindAttributeNotFound:
		return ErrAttributeNotFound
	case KindInvalidName:
		return ErrInvalidName
	default:
		return nil
	}
}

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a resolution failure for one name. Nested failures are kept in Err,
// so the outermost error carries the name at every recursion level.
type Error struct {
	Kind Kind
	Name string
	Err  error

	// Suggestions holds similarly named units for NotFound errors.
	Suggestions []string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Name, e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's own kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
