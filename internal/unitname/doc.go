// Package unitname defines Name, the canonical dotted identifier of a unit.
//
// A Name is an immutable sequence of identifier segments such as
// ["pkg", "sub", "leaf"]. Its joined form ("pkg.sub.leaf") is the key used by
// the registry, the finders and every log line. Relative requests are turned
// into absolute names by Absolute before anything else looks at them.
package unitname
