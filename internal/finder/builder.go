package finder

import (
	"context"
	"path/filepath"

	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/fsutil"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// ContainerInitializer is the file that marks a directory as a container.
const ContainerInitializer = "_init.hcl"

// Extension maps a recognized leaf file extension to its body format.
type Extension struct {
	Suffix string
	Format unit.Format
}

// DefaultExtensions lists the recognized leaf extensions in priority order.
var DefaultExtensions = []Extension{
	{Suffix: ".hcl", Format: unit.FormatHCL},
	{Suffix: ".yaml", Format: unit.FormatYAML},
	{Suffix: ".yml", Format: unit.FormatYAML},
	{Suffix: ".toml", Format: unit.FormatTOML},
	{Suffix: ".json", Format: unit.FormatJSON},
}

// Builder turns a name plus candidate locations into a descriptor.
type Builder struct {
	extensions []Extension
	namespaces bool
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithExtensions replaces the recognized leaf extensions.
func WithExtensions(exts ...Extension) BuilderOption {
	return func(b *Builder) {
		b.extensions = exts
	}
}

// WithNamespaceContainers makes directories without an initializer resolve
// as body-less containers when nothing else matched.
func WithNamespaceContainers() BuilderOption {
	return func(b *Builder) {
		b.namespaces = true
	}
}

// NewBuilder creates a Builder with the default extensions.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{extensions: DefaultExtensions}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Suffixes returns the recognized extensions in priority order.
func (b *Builder) Suffixes() []string {
	out := make([]string, 0, len(b.extensions))
	for _, ext := range b.extensions {
		out = append(out, ext.Suffix)
	}
	return out
}

// Find tries each location in order and returns the first match, or nil, nil.
func (b *Builder) Find(ctx context.Context, name unitname.Name, locations []string) (*unit.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	last := name.Last()

	for _, location := range locations {
		for _, ext := range b.extensions {
			candidate := filepath.Join(location, last+ext.Suffix)
			if fsutil.IsFile(candidate) {
				logger.Debug("Found unit file.", "unit", name.String(), "path", candidate)
				return unit.NewFileDescriptor(name, candidate, ext.Format), nil
			}
		}

		dir := filepath.Join(location, last)
		initializer := filepath.Join(dir, ContainerInitializer)
		if fsutil.IsDir(dir) && fsutil.IsFile(initializer) {
			logger.Debug("Found container.", "unit", name.String(), "path", dir)
			return unit.NewContainerDescriptor(name, initializer, unit.FormatHCL, []string{dir}), nil
		}
	}

	if b.namespaces {
		var portions []string
		for _, location := range locations {
			dir := filepath.Join(location, last)
			if fsutil.IsDir(dir) {
				portions = append(portions, dir)
			}
		}
		if len(portions) > 0 {
			logger.Debug("Synthesized namespace container.", "unit", name.String(), "portions", portions)
			return unit.NewNamespaceDescriptor(name, portions), nil
		}
	}

	return nil, nil
}
