package engine

import (
	"io"

	"github.com/vk/hclimport/internal/finder"
	"github.com/vk/hclimport/internal/importgraph"
	"github.com/vk/hclimport/internal/metrics"
	"github.com/vk/hclimport/internal/platform"
)

// Option configures an Engine.
type Option func(*Engine)

// WithSearchPath sets the global search path, tried in order.
func WithSearchPath(locations ...string) Option {
	return func(e *Engine) {
		e.searchPath = append([]string(nil), locations...)
	}
}

// WithFinders appends custom finders. They run after the platform finder and
// before the path finder, in the order given.
func WithFinders(finders ...finder.Finder) Option {
	return func(e *Engine) {
		e.custom = append(e.custom, finders...)
	}
}

// WithPlatform installs the platform unit provider.
func WithPlatform(p *platform.Provider) Option {
	return func(e *Engine) {
		e.platform = p
	}
}

// WithBuilder replaces the default descriptor builder.
func WithBuilder(b *finder.Builder) Option {
	return func(e *Engine) {
		e.builder = b
	}
}

// WithMetrics records resolution outcomes into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithOutput sets where unit bodies print to. The default discards output.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithImportGraph records an edge from the importing unit to the resolved
// name for every successful request that names its calling unit.
func WithImportGraph(g *importgraph.Graph) Option {
	return func(e *Engine) {
		e.graph = g
	}
}

// WithStrictSelection makes a selected name that is neither an attribute nor
// a sub-unit fail with KindAttributeNotFound instead of being ignored.
func WithStrictSelection() Option {
	return func(e *Engine) {
		e.strict = true
	}
}
