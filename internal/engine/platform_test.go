package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/metrics"
	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/testutil"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty"
)

type failingModule struct{}

func (failingModule) Register(p *platform.Provider) {
	p.RegisterUnit("flaky", func(context.Context, *unit.Handle) error {
		return errors.New("provider exploded")
	})
}

func TestResolve_PlatformUnitsComeFirst(t *testing.T) {
	provider := platform.New(&testutil.SimpleModule{Units: map[string]map[string]cty.Value{
		"env": {"shell": cty.StringVal("/bin/sh")},
	}})
	f := setup(t, map[string]string{
		"env.hcl": "x = fail(\"the file must not be loaded\")\n",
		"app.hcl": "import \"env\" {\n  select = [\"shell\"]\n}\n",
	}, WithPlatform(provider))

	env := f.resolve(t, "env")
	provided, err := provider.Provide(f.ctx, env.Name())
	require.NoError(t, err)
	assert.Same(t, provided, env, "the provider's own handle is registered")
	assert.Equal(t, unit.Delegated, env.Kind())
	origin, _ := env.Origin()
	assert.Equal(t, platform.Token(env.Name()), origin)

	app := f.resolve(t, "app")
	assert.Equal(t, "/bin/sh", dataAttr(t, app, "shell").AsString())
	assert.Same(t, env, f.resolve(t, "env"))
}

func TestResolve_PlatformFailure(t *testing.T) {
	f := setup(t, nil, WithPlatform(platform.New(failingModule{})))

	_, err := f.engine.Resolve(f.ctx, unit.Request{Target: "flaky"})
	requireKind(t, err, KindInitializationFailed)
	assert.Contains(t, err.Error(), "provider exploded")
	assert.Equal(t, 0, f.reg.Len())
}

func TestResolve_PlatformSuggestions(t *testing.T) {
	provider := platform.New(&testutil.SimpleModule{Units: map[string]map[string]cty.Value{
		"runtime": {},
	}})
	f := setup(t, nil, WithPlatform(provider))

	_, err := f.engine.Resolve(f.ctx, unit.Request{Target: "runtim"})
	e := requireKind(t, err, KindNotFound)
	assert.Equal(t, []string{"runtime"}, e.Suggestions)
}

func TestResolve_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := setup(t, testutil.MergeTrees(testutil.SimpleUnit, map[string]string{
		"broken.hcl": "x = fail(\"no\")\n",
	}), WithMetrics(metrics.New(reg)))

	f.resolve(t, "test_simple_module")
	f.resolve(t, "test_simple_module")
	_, err := f.engine.Resolve(f.ctx, unit.Request{Target: "broken"})
	require.Error(t, err)

	expected := `
# HELP hclimport_resolutions_total Total number of unit resolutions by outcome.
# TYPE hclimport_resolutions_total counter
hclimport_resolutions_total{outcome="cached"} 1
hclimport_resolutions_total{outcome="failed"} 1
hclimport_resolutions_total{outcome="loaded"} 1
# HELP hclimport_rollbacks_total Total number of registry entries evicted after a failed initialization.
# TYPE hclimport_rollbacks_total counter
hclimport_rollbacks_total 1
# HELP hclimport_registered_units Number of units currently held by the registry.
# TYPE hclimport_registered_units gauge
hclimport_registered_units 1
`
	assert.NoError(t, promtestutil.GatherAndCompare(reg, strings.NewReader(expected),
		"hclimport_resolutions_total",
		"hclimport_rollbacks_total",
		"hclimport_registered_units",
	))
}
