package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// ErrDelegated is returned by Set.For for platform-provided descriptors.
var ErrDelegated = errors.New("delegated units are initialized by the platform provider")

// Loader runs a unit's initialization logic against its handle.
type Loader interface {
	Exec(ctx context.Context, h *unit.Handle) error
}

// Importer resolves imports issued from inside a unit body. The engine
// implements it; calls happen on the same call stack as the importing Exec.
type Importer interface {
	Resolve(ctx context.Context, req unit.Request) (*unit.Handle, error)
	// Lookup returns a registered unit, bound into its parent or not.
	Lookup(name unitname.Name) (*unit.Handle, bool)
}

// Set selects a Loader for a descriptor.
type Set struct {
	body      *BodyLoader
	namespace Namespace
}

// NewSet creates a loader set. Print output of unit bodies goes to out; a nil
// writer discards it.
func NewSet(imp Importer, out io.Writer) *Set {
	if out == nil {
		out = io.Discard
	}
	return &Set{body: NewBodyLoader(imp, out)}
}

// For returns the strategy matching d's execution kind and body format.
func (s *Set) For(d *unit.Descriptor) (Loader, error) {
	switch d.Kind {
	case unit.NoBody:
		return s.namespace, nil
	case unit.Delegated:
		return nil, ErrDelegated
	case unit.FileBody, unit.ContainerBody:
		switch d.Format {
		case unit.FormatHCL:
			return s.body, nil
		case unit.FormatYAML, unit.FormatTOML, unit.FormatJSON:
			return &DataLoader{Format: d.Format}, nil
		default:
			return nil, fmt.Errorf("no loader for format %q of unit %s", d.Format, d.Name)
		}
	default:
		return nil, fmt.Errorf("no loader for kind %s of unit %s", d.Kind, d.Name)
	}
}

// Namespace is the strategy for containers without a body.
type Namespace struct{}

// Exec does nothing.
func (Namespace) Exec(context.Context, *unit.Handle) error { return nil }
