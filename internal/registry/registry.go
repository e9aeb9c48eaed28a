package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

// ErrIdentityConflict is returned when a different handle is registered under
// a name that is already taken.
var ErrIdentityConflict = errors.New("unit already registered with a different handle")

// Registry holds the resolved handles of a single engine instance.
type Registry struct {
	mu    sync.RWMutex
	units map[string]*unit.Handle
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{units: make(map[string]*unit.Handle)}
}

// Lookup returns the handle registered under name.
func (r *Registry) Lookup(name unitname.Name) (*unit.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.units[name.String()]
	return h, ok
}

// Register binds h under its own name. Registering the same handle twice is a
// no-op; substituting a different handle is refused.
func (r *Registry) Register(h *unit.Handle) error {
	key := h.Name().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.units[key]; ok {
		if existing == h {
			return nil
		}
		return fmt.Errorf("register %q: %w", key, ErrIdentityConflict)
	}
	r.units[key] = h
	return nil
}

// LoadOrRegister binds h under its own name unless the name is taken. It
// returns the handle that ends up registered and whether it was already
// present. The check and the write happen under one lock.
func (r *Registry) LoadOrRegister(h *unit.Handle) (*unit.Handle, bool) {
	key := h.Name().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.units[key]; ok {
		return existing, true
	}
	r.units[key] = h
	return h, false
}

// EvictHandle removes h only if it is still the handle registered under its
// name. It reports whether h was removed.
func (r *Registry) EvictHandle(h *unit.Handle) bool {
	key := h.Name().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.units[key] != h {
		return false
	}
	delete(r.units, key)
	return true
}

// Evict removes name. It reports whether an entry was present.
func (r *Registry) Evict(name unitname.Name) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.units[name.String()]; !ok {
		return false
	}
	delete(r.units, name.String())
	return true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}
