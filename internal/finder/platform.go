package finder

import (
	"context"

	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// PlatformFinder answers for the fixed table of platform units.
type PlatformFinder struct {
	provider *platform.Provider
}

// NewPlatformFinder wraps a provider.
func NewPlatformFinder(provider *platform.Provider) *PlatformFinder {
	return &PlatformFinder{provider: provider}
}

// FindSpec implements Finder.
func (f *PlatformFinder) FindSpec(ctx context.Context, name unitname.Name, _ []string) (*unit.Descriptor, error) {
	if !f.provider.Has(name) {
		return nil, nil
	}
	return unit.NewDelegatedDescriptor(name, platform.Token(name)), nil
}
