// Package engine resolves dotted unit names into initialized handles.
//
// A resolution normalizes the requested name, short-circuits on the registry,
// resolves every ancestor container first, walks the finder chain, registers
// the new handle before running its body and finally binds it into its parent.
// What Resolve returns depends on the request shape: selective requests get
// the unit itself, plain multi-segment requests get the top-level container.
//
// Unit bodies may call back into the same Engine while they run. Such nested
// calls observe already-registered handles, which is what makes cyclic
// imports terminate.
package engine
