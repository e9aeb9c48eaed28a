package finder

import (
	"context"

	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// PathFinder searches the filesystem through a Builder: the parent container's
// locations first, then the global search path.
type PathFinder struct {
	builder    *Builder
	searchPath []string
}

// NewPathFinder creates a path finder over the given global search path.
func NewPathFinder(builder *Builder, searchPath []string) *PathFinder {
	return &PathFinder{builder: builder, searchPath: append([]string(nil), searchPath...)}
}

// SearchPath returns the global search path.
func (f *PathFinder) SearchPath() []string {
	return append([]string(nil), f.searchPath...)
}

// Builder returns the underlying descriptor builder.
func (f *PathFinder) Builder() *Builder {
	return f.builder
}

// FindSpec implements Finder.
func (f *PathFinder) FindSpec(ctx context.Context, name unitname.Name, parentLocations []string) (*unit.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)

	if parentLocations != nil {
		logger.Debug("Searching parent container locations.", "unit", name.String(), "locations", parentLocations)
		d, err := f.builder.Find(ctx, name, parentLocations)
		if err != nil || d != nil {
			return d, err
		}
		logger.Debug("Not found in parent locations, falling back to the search path.", "unit", name.String())
	}

	return f.builder.Find(ctx, name, f.searchPath)
}
