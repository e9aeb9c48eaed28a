package importgraph

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAddEdge(t *testing.T) {
	g := New()
	g.AddEdge("a.b", "a")
	g.AddEdge("a.b.c", "a.b")
	g.AddEdge("a.b.c", "a.b")
	g.AddEdge("main", "a.b.c")

	assert.Equal(t, 3, g.Len(), "duplicate edges are recorded once")
	assert.Equal(t, []string{"a.b"}, g.DependenciesOf("a.b.c"))
	assert.Equal(t, []string{"a.b.c"}, g.DependentsOf("a.b"))
	assert.Nil(t, g.DependenciesOf("a"))
	assert.Nil(t, g.DependentsOf("main"))
}

func TestEdgesOrdered(t *testing.T) {
	g := New()
	g.AddEdge("z", "b")
	g.AddEdge("a", "y")
	g.AddEdge("a", "x")

	want := []Edge{
		{From: "a", To: "x"},
		{From: "a", To: "y"},
		{From: "z", To: "b"},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestCyclesAreRecorded(t *testing.T) {
	g := New()
	g.AddEdge("cyc", "cyc.child")
	g.AddEdge("cyc.child", "cyc")

	assert.Equal(t, []string{"cyc.child"}, g.DependenciesOf("cyc"))
	assert.Equal(t, []string{"cyc.child"}, g.DependentsOf("cyc"))
}

func TestRemove(t *testing.T) {
	g := New()
	g.AddEdge("broken", "util")
	g.AddEdge("main", "broken")

	g.Remove("broken")

	assert.Nil(t, g.DependenciesOf("broken"))
	assert.Equal(t, []string{"main"}, g.DependentsOf("broken"))
	assert.Equal(t, 1, g.Len())
}

func TestConcurrentAddEdge(t *testing.T) {
	g := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g.AddEdge("main", fmt.Sprintf("dep%02d", i%8))
			_ = g.Edges()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, g.Len())
	assert.Len(t, g.DependenciesOf("main"), 8)
}
