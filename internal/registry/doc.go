// Package registry provides the process-lifetime cache of resolved units.
//
// The Registry is the single source of truth for "is this unit already
// resolved". It maps canonical unit names to handles and is monotonic except
// for deliberate eviction after a failed initialization.
//
// A Registry is an explicit service object: every engine is constructed with
// its own instance, so tests stay hermetic and nothing depends on ambient
// global state.
package registry
