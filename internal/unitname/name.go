package unitname

import "strings"

// Separator joins the segments of a Name.
const Separator = "."

// Name is the structured representation of a dotted unit name.
// The zero value is the empty name and is never produced by Parse.
type Name struct {
	segments []string
	key      string
}

func newName(segments []string) Name {
	return Name{segments: segments, key: strings.Join(segments, Separator)}
}

// String returns the canonical dotted form.
func (n Name) String() string {
	return n.key
}

// IsZero reports whether n is the empty name.
func (n Name) IsZero() bool {
	return len(n.segments) == 0
}

// Len returns the number of segments.
func (n Name) Len() int {
	return len(n.segments)
}

// Segments returns a copy of the segments.
func (n Name) Segments() []string {
	out := make([]string, len(n.segments))
	copy(out, n.segments)
	return out
}

// Last returns the final segment, or "" for the zero name.
func (n Name) Last() string {
	if n.IsZero() {
		return ""
	}
	return n.segments[len(n.segments)-1]
}

// Root returns the first segment as a single-segment name.
func (n Name) Root() Name {
	if n.IsZero() {
		return Name{}
	}
	return newName(n.segments[:1:1])
}

// Parent returns the name with its last segment dropped. The boolean is false
// for top-level names.
func (n Name) Parent() (Name, bool) {
	if len(n.segments) < 2 {
		return Name{}, false
	}
	return newName(n.segments[: len(n.segments)-1 : len(n.segments)-1]), true
}

// Prefixes returns every strict prefix of n in root-to-leaf order.
// For "a.b.c" that is ["a", "a.b"].
func (n Name) Prefixes() []Name {
	if len(n.segments) < 2 {
		return nil
	}
	out := make([]Name, 0, len(n.segments)-1)
	for i := 1; i < len(n.segments); i++ {
		out = append(out, newName(n.segments[:i:i]))
	}
	return out
}

// Child appends a single validated segment to n.
func (n Name) Child(segment string) (Name, error) {
	if err := validateSegment(segment); err != nil {
		return Name{}, err
	}
	segments := make([]string, 0, len(n.segments)+1)
	segments = append(segments, n.segments...)
	segments = append(segments, segment)
	return newName(segments), nil
}

// Equal reports whether two names have the same canonical form.
func (n Name) Equal(other Name) bool {
	return n.key == other.key
}
