package finder

import (
	"context"

	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// Finder is one entry of the lookup chain.
//
// FindSpec returns nil, nil when it does not know the unit. parentLocations
// holds the sub-search locations of the parent container, or nil when the
// name is top-level or its parent is not a container.
type Finder interface {
	FindSpec(ctx context.Context, name unitname.Name, parentLocations []string) (*unit.Descriptor, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(ctx context.Context, name unitname.Name, parentLocations []string) (*unit.Descriptor, error)

// FindSpec calls f.
func (f FinderFunc) FindSpec(ctx context.Context, name unitname.Name, parentLocations []string) (*unit.Descriptor, error) {
	return f(ctx, name, parentLocations)
}
