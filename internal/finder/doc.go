// Package finder locates units and describes them.
//
// The Builder implements the on-disk convention: a file named after the last
// name segment with a recognized extension is a leaf unit, and a directory of
// that name holding a container initializer is a container whose sub-units
// live inside it. Candidate locations are tried in the order supplied and the
// first match wins.
//
// Finders form the engine's lookup chain. The chain is an ordered list fixed
// at engine construction: the platform finder, any custom finders, and the
// path finder that wraps the Builder.
package finder
