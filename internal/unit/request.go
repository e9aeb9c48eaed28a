package unit

// Wildcard is the selection entry meaning "every public name".
const Wildcard = "*"

// Caller identifies the unit issuing a request.
type Caller struct {
	// Package is "" for a top-level unit.
	Package string
	// Unit is the importing unit's absolute name, when known.
	Unit string
}

// Request is one caller-facing resolution.
//
// A nil Select is a whole-unit import. A non-nil Select, even an empty one, is
// a selective import and makes the engine return the unit itself.
type Request struct {
	Target string
	Select []string
	Level  int
	Caller *Caller
}

// IsSelective reports whether the request carries a selection list.
func (r Request) IsSelective() bool {
	return r.Select != nil
}

// CallerPackage returns the caller's package, or "" without a caller.
func (r Request) CallerPackage() string {
	if r.Caller == nil {
		return ""
	}
	return r.Caller.Package
}
