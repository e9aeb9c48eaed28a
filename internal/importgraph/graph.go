// Package importgraph records which unit imported which during resolution.
//
// The graph is a thread-safe edge store keyed by absolute unit names. Edges
// run from the importing unit to the unit its import statement named, so
// DependenciesOf lists what a unit pulled in and DependentsOf lists who
// pulled it in. Cycles are allowed; the graph only records them.
package importgraph

import (
	"sort"
	"sync"
)

// Edge is one recorded import.
type Edge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Graph stores import edges using maps and a mutex for thread-safe
// concurrent access.
type Graph struct {
	mu   sync.RWMutex
	deps map[string]map[string]struct{} // Key: importer, Value: set of imported names
}

// New creates a new, empty graph.
func New() *Graph {
	return &Graph{deps: make(map[string]map[string]struct{})}
}

// AddEdge records that from imported to. Recording the same edge twice is a
// no-op.
func (g *Graph) AddEdge(from, to string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.deps[from] == nil {
		g.deps[from] = make(map[string]struct{})
	}
	g.deps[from][to] = struct{}{}
}

// DependenciesOf returns the sorted names imported by name.
func (g *Graph) DependenciesOf(name string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedSet(g.deps[name])
}

// DependentsOf returns the sorted names of the units that imported name.
func (g *Graph) DependentsOf(name string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for from, set := range g.deps {
		if _, ok := set[name]; ok {
			out = append(out, from)
		}
	}
	sort.Strings(out)
	return out
}

// Remove drops every edge leaving name. Edges pointing at name stay: the
// importer did attempt the import.
func (g *Graph) Remove(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.deps, name)
}

// Edges returns every edge ordered by importer, then by imported name.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	froms := make([]string, 0, len(g.deps))
	for from := range g.deps {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	var edges []Edge
	for _, from := range froms {
		for _, to := range sortedSet(g.deps[from]) {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// Len returns the number of recorded edges.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, set := range g.deps {
		n += len(set)
	}
	return n
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
