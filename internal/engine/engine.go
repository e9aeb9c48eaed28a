package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/finder"
	"github.com/vk/hclimport/internal/importgraph"
	"github.com/vk/hclimport/internal/loader"
	"github.com/vk/hclimport/internal/metrics"
	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/registry"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// Engine resolves unit names against one registry.
type Engine struct {
	reg        *registry.Registry
	platform   *platform.Provider
	custom     []finder.Finder
	builder    *finder.Builder
	searchPath []string
	metrics    *metrics.Metrics
	out        io.Writer
	strict     bool
	graph      *importgraph.Graph

	chain   []finder.Finder
	loaders *loader.Set
}

// New creates an Engine. The finder chain is fixed here: the platform finder
// (when a provider is installed), the custom finders, then the path finder.
func New(reg *registry.Registry, opts ...Option) *Engine {
	if reg == nil {
		panic("engine: registry must not be nil")
	}
	e := &Engine{reg: reg, out: io.Discard}
	for _, opt := range opts {
		opt(e)
	}
	if e.builder == nil {
		e.builder = finder.NewBuilder()
	}

	if e.platform != nil {
		e.chain = append(e.chain, finder.NewPlatformFinder(e.platform))
	}
	e.chain = append(e.chain, e.custom...)
	e.chain = append(e.chain, finder.NewPathFinder(e.builder, e.searchPath))
	e.loaders = loader.NewSet(e, e.out)
	return e
}

// Registry returns the registry the engine writes to.
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Lookup returns the registered handle for name, whether or not it is bound
// into its parent yet.
func (e *Engine) Lookup(name unitname.Name) (*unit.Handle, bool) {
	return e.reg.Lookup(name)
}

// SearchPath returns a copy of the global search path.
func (e *Engine) SearchPath() []string {
	return append([]string(nil), e.searchPath...)
}

// Resolve resolves req and returns the handle its shape calls for.
func (e *Engine) Resolve(ctx context.Context, req unit.Request) (*unit.Handle, error) {
	if _, ok := ctxlog.RequestID(ctx); !ok {
		ctx, _ = ctxlog.WithRequestID(ctx)
	}

	name, err := e.normalize(req)
	if err != nil {
		e.metrics.Resolution(metrics.OutcomeFailed)
		return nil, err
	}

	h, err := e.resolve(ctx, name, req.Select)
	if err != nil {
		e.metrics.Resolution(metrics.OutcomeFailed)
		return nil, err
	}
	if e.graph != nil && req.Caller != nil && req.Caller.Unit != "" {
		e.graph.AddEdge(req.Caller.Unit, name.String())
	}
	return h, nil
}

// normalize turns the request target into an absolute name.
func (e *Engine) normalize(req unit.Request) (unitname.Name, error) {
	var callerPackage string
	if req.Caller != nil {
		callerPackage = req.Caller.Package
	}
	name, err := unitname.Absolute(req.Target, req.Level, callerPackage)
	if err == nil {
		return name, nil
	}

	kind := KindInvalidName
	if errors.Is(err, unitname.ErrNoPackage) ||
		errors.Is(err, unitname.ErrBeyondTopLevel) ||
		errors.Is(err, unitname.ErrInvalidLevel) {
		kind = KindInvalidRelative
	}
	return unitname.Name{}, &Error{Kind: kind, Name: req.Target, Err: err}
}

// resolve runs the algorithm for an absolute name. A nil selection is a
// whole-unit request.
func (e *Engine) resolve(ctx context.Context, name unitname.Name, selection []string) (*unit.Handle, error) {
	logger := ctxlog.FromContext(ctx).With("unit", name.String())

	if h, ok := e.reg.Lookup(name); ok {
		logger.Debug("Unit found in registry.")
		e.metrics.Resolution(metrics.OutcomeCached)
		if err := e.reattach(ctx, name, h); err != nil {
			return nil, err
		}
		return e.selectReturn(ctx, h, selection)
	}

	for _, prefix := range name.Prefixes() {
		if _, ok := e.reg.Lookup(prefix); ok {
			continue
		}
		logger.Debug("Resolving ancestor.", "ancestor", prefix.String())
		if _, err := e.resolve(ctx, prefix, nil); err != nil {
			return nil, &Error{Kind: KindParentFailed, Name: name.String(), Err: err}
		}
	}

	// An ancestor's body may have imported the target already.
	if h, ok := e.reg.Lookup(name); ok {
		logger.Debug("Unit registered while resolving ancestors.")
		e.metrics.Resolution(metrics.OutcomeCached)
		return e.selectReturn(ctx, h, selection)
	}

	parentLocations, err := e.parentLocations(name)
	if err != nil {
		return nil, err
	}

	d, err := e.find(ctx, name, parentLocations)
	if err != nil {
		return nil, err
	}

	if d.Kind == unit.Delegated {
		return e.delegate(ctx, name, selection)
	}

	h := unit.NewHandle(d)
	if existing, loaded := e.reg.LoadOrRegister(h); loaded {
		logger.Debug("Unit registered concurrently, using the existing handle.")
		e.metrics.Resolution(metrics.OutcomeCached)
		return e.selectReturn(ctx, existing, selection)
	}
	logger.Debug("Unit registered, initializing.", "kind", d.Kind.String(), "origin", d.Origin)

	if err := e.initialize(ctx, d, h); err != nil {
		e.rollback(ctx, h)
		return nil, &Error{Kind: KindInitializationFailed, Name: name.String(), Err: err}
	}

	if err := e.bindParent(name, h); err != nil {
		e.rollback(ctx, h)
		return nil, err
	}

	e.metrics.Resolution(metrics.OutcomeLoaded)
	e.metrics.Registered(e.reg.Len())
	logger.Debug("Unit initialized.", "attributes", h.Len())
	return e.selectReturn(ctx, h, selection)
}

// reattach restores the ancestors and the parent binding of a cached unit.
// Both go missing when a container that had already resolved the unit rolls
// back.
func (e *Engine) reattach(ctx context.Context, name unitname.Name, h *unit.Handle) error {
	parent, ok := name.Parent()
	if !ok {
		return nil
	}
	for _, prefix := range name.Prefixes() {
		if _, ok := e.reg.Lookup(prefix); ok {
			continue
		}
		ctxlog.FromContext(ctx).Debug("Re-resolving ancestor of a cached unit.", "unit", name.String(), "ancestor", prefix.String())
		if _, err := e.resolve(ctx, prefix, nil); err != nil {
			return &Error{Kind: KindParentFailed, Name: name.String(), Err: err}
		}
	}

	ph, ok := e.reg.Lookup(parent)
	if !ok {
		return &Error{
			Kind: KindParentFailed,
			Name: name.String(),
			Err:  fmt.Errorf("parent %s is not registered", parent),
		}
	}
	if _, bound := ph.Get(name.Last()); !bound {
		ph.BindSubUnit(name.Last(), h)
	}
	return nil
}

// parentLocations returns the sub-search locations of name's parent, or nil
// for a top-level name.
func (e *Engine) parentLocations(name unitname.Name) ([]string, error) {
	parent, ok := name.Parent()
	if !ok {
		return nil, nil
	}
	ph, ok := e.reg.Lookup(parent)
	if !ok {
		return nil, &Error{
			Kind: KindParentFailed,
			Name: name.String(),
			Err:  fmt.Errorf("parent %s is no longer registered", parent),
		}
	}
	locations, ok := ph.SubSearchLocations()
	if !ok {
		return nil, &Error{
			Kind: KindNotFound,
			Name: name.String(),
			Err:  fmt.Errorf("%s is not a container", parent),
		}
	}
	return locations, nil
}

// find walks the finder chain; the first descriptor wins.
func (e *Engine) find(ctx context.Context, name unitname.Name, parentLocations []string) (*unit.Descriptor, error) {
	for _, f := range e.chain {
		d, err := f.FindSpec(ctx, name, parentLocations)
		if err != nil {
			return nil, &Error{Kind: KindNotFound, Name: name.String(), Err: fmt.Errorf("lookup failed: %w", err)}
		}
		if d != nil {
			return d, nil
		}
	}
	return nil, &Error{
		Kind:        KindNotFound,
		Name:        name.String(),
		Suggestions: e.suggest(name, parentLocations),
	}
}

// delegate registers the provider's own handle for a platform unit.
func (e *Engine) delegate(ctx context.Context, name unitname.Name, selection []string) (*unit.Handle, error) {
	if e.platform == nil {
		return nil, &Error{Kind: KindNotFound, Name: name.String(), Err: platform.ErrNotFound}
	}
	h, err := e.platform.Provide(ctx, name)
	if err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return nil, &Error{Kind: KindNotFound, Name: name.String(), Err: err}
		}
		return nil, &Error{Kind: KindInitializationFailed, Name: name.String(), Err: err}
	}

	h, loaded := e.reg.LoadOrRegister(h)
	if !loaded {
		if err := e.bindParent(name, h); err != nil {
			e.rollback(ctx, h)
			return nil, err
		}
		e.metrics.Resolution(metrics.OutcomeLoaded)
		e.metrics.Registered(e.reg.Len())
	}
	ctxlog.FromContext(ctx).Debug("Platform unit provided.", "unit", name.String())
	return e.selectReturn(ctx, h, selection)
}

func (e *Engine) initialize(ctx context.Context, d *unit.Descriptor, h *unit.Handle) error {
	l, err := e.loaders.For(d)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := l.Exec(ctx, h); err != nil {
		return err
	}
	e.metrics.Loaded(d.Kind.String(), time.Since(start))
	return nil
}

// rollback evicts a handle whose initialization did not complete.
func (e *Engine) rollback(ctx context.Context, h *unit.Handle) {
	if e.reg.EvictHandle(h) {
		ctxlog.FromContext(ctx).Debug("Unit evicted after failed initialization.", "unit", h.Name().String())
		e.metrics.RolledBack()
		e.metrics.Registered(e.reg.Len())
		if e.graph != nil {
			e.graph.Remove(h.Name().String())
		}
	}
	// A cached hit during the cycle may have bound it early.
	if parent, ok := h.Name().Parent(); ok {
		if ph, ok := e.reg.Lookup(parent); ok {
			ph.UnbindSubUnit(h.Name().Last(), h)
		}
	}
}

// bindParent sets the unit as an attribute of its parent container.
func (e *Engine) bindParent(name unitname.Name, h *unit.Handle) error {
	parent, ok := name.Parent()
	if !ok {
		return nil
	}
	ph, ok := e.reg.Lookup(parent)
	if !ok {
		return &Error{
			Kind: KindParentFailed,
			Name: name.String(),
			Err:  fmt.Errorf("parent %s was evicted during initialization", parent),
		}
	}
	ph.BindSubUnit(name.Last(), h)
	return nil
}

// selectReturn picks the handle a request of this shape gets back.
func (e *Engine) selectReturn(ctx context.Context, h *unit.Handle, selection []string) (*unit.Handle, error) {
	if selection != nil {
		if err := e.handleSelection(ctx, h, selection); err != nil {
			return nil, err
		}
		return h, nil
	}

	name := h.Name()
	if name.Len() == 1 {
		return h, nil
	}
	root, ok := e.reg.Lookup(name.Root())
	if !ok {
		return nil, &Error{
			Kind: KindParentFailed,
			Name: name.String(),
			Err:  fmt.Errorf("top-level unit %s is not registered", name.Root()),
		}
	}
	return root, nil
}
