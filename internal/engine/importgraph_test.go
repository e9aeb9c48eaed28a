package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/importgraph"
	"github.com/vk/hclimport/internal/testutil"
	"github.com/vk/hclimport/internal/unit"
)

func TestResolve_RecordsImportGraph(t *testing.T) {
	g := importgraph.New()
	f := setup(t, testutil.NestedTree, WithImportGraph(g))

	f.resolve(t, "test_a.b.c")

	want := []importgraph.Edge{
		{From: "test_a.b", To: "test_a"},
		{From: "test_a.b.c", To: "test_a.b"},
	}
	assert.Equal(t, want, g.Edges())
}

func TestResolve_ImportGraphIgnoresAnonymousCallers(t *testing.T) {
	g := importgraph.New()
	f := setup(t, testutil.SimpleUnit, WithImportGraph(g))

	_, err := f.engine.Resolve(f.ctx, unit.Request{
		Target: "test_simple_module",
		Caller: &unit.Caller{Package: ""},
	})
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

func TestResolve_RollbackDropsImportEdges(t *testing.T) {
	g := importgraph.New()
	f := setup(t, map[string]string{
		"util.hcl":   `answer = 1`,
		"broken.hcl": "import \"util\" {}\nvalue = fail(\"no\")\n",
		"main.hcl":   `import "broken" {}`,
	}, WithImportGraph(g))

	_, err := f.engine.Resolve(f.ctx, unit.Request{Target: "main"})
	requireKind(t, err, KindInitializationFailed)

	assert.Nil(t, g.DependenciesOf("broken"))
	assert.Nil(t, g.DependenciesOf("main"))
	assert.Zero(t, g.Len())
}
