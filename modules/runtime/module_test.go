package runtime

import (
	"context"
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/unitname"
	"github.com/zclconf/go-cty/cty"
)

func TestModule_Provide(t *testing.T) {
	p := platform.New(&Module{})

	h, err := p.Provide(context.Background(), unitname.MustParse(UnitName))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"goos", "goarch", "version", "num_cpu"}, h.Keys())

	v, _ := h.Get("goos")
	goos, _ := v.Data()
	assert.Equal(t, goruntime.GOOS, goos.AsString())

	v, _ = h.Get("num_cpu")
	cpus, _ := v.Data()
	assert.True(t, cpus.RawEquals(cty.NumberIntVal(int64(goruntime.NumCPU()))))
}
