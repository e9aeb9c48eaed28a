package platform

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// TokenPrefix prefixes the origin token of every platform unit.
const TokenPrefix = "platform:"

// ErrNotFound is returned by Provide for names the provider does not own.
var ErrNotFound = errors.New("no platform unit with that name")

// Module is the interface that all compiled-in modules implement to
// contribute platform units.
type Module interface {
	Register(p *Provider)
}

// Factory populates the namespace of a freshly created platform unit.
type Factory func(ctx context.Context, h *unit.Handle) error

// Provider owns the fixed table of platform units.
type Provider struct {
	mu        sync.Mutex
	factories map[string]Factory
	loaded    map[string]*unit.Handle
}

// New creates a provider and registers the given modules.
func New(modules ...Module) *Provider {
	p := &Provider{
		factories: make(map[string]Factory),
		loaded:    make(map[string]*unit.Handle),
	}
	for _, mod := range modules {
		mod.Register(p)
	}
	return p
}

// RegisterUnit adds a platform unit. Registering a name twice is a programmer
// error and panics.
func (p *Provider) RegisterUnit(name string, factory Factory) {
	n := unitname.MustParse(name)
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.factories[n.String()]; exists {
		panic(fmt.Sprintf("platform unit '%s' already registered", n))
	}
	p.factories[n.String()] = factory
}

// Has reports whether name is a platform unit.
func (p *Provider) Has(name unitname.Name) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.factories[name.String()]
	return ok
}

// Names returns the registered platform unit names, sorted.
func (p *Provider) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.factories))
	for name := range p.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Token returns the origin token used for name.
func Token(name unitname.Name) string {
	return TokenPrefix + name.String()
}

// Provide returns the initialized handle for name, building it on first use.
func (p *Provider) Provide(ctx context.Context, name unitname.Name) (*unit.Handle, error) {
	logger := ctxlog.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if h, ok := p.loaded[name.String()]; ok {
		logger.Debug("Platform unit served from provider cache.", "unit", name.String())
		return h, nil
	}
	factory, ok := p.factories[name.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	h := unit.NewHandle(unit.NewDelegatedDescriptor(name, Token(name)))
	if err := factory(ctx, h); err != nil {
		return nil, fmt.Errorf("platform unit %q: %w", name, err)
	}
	p.loaded[name.String()] = h
	logger.Debug("Platform unit built.", "unit", name.String(), "attributes", h.Len())
	return h, nil
}
