package finder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/testutil"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
)

func TestPathFinder_ParentLocationsFirst(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := testutil.WriteTree(t, map[string]string{
		"util.hcl":          `where = "global"`,
		"pkg/_init.hcl":     ``,
		"pkg/util.hcl":      `where = "pkg"`,
		"pkg/only_here.hcl": ``,
	})
	f := NewPathFinder(NewBuilder(), []string{root})
	parentLocs := []string{filepath.Join(root, "pkg")}

	d, err := f.FindSpec(ctx, unitname.MustParse("pkg.util"), parentLocs)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, filepath.Join(root, "pkg", "util.hcl"), d.Origin)

	d, err = f.FindSpec(ctx, unitname.MustParse("util"), nil)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, filepath.Join(root, "util.hcl"), d.Origin)

	d, err = f.FindSpec(ctx, unitname.MustParse("only_here"), nil)
	require.NoError(t, err)
	assert.Nil(t, d, "sub-units are not visible on the global path")
}

func TestPathFinder_FallsBackToSearchPath(t *testing.T) {
	ctx, _ := testutil.Context(t)
	root := testutil.WriteTree(t, map[string]string{
		"shared.hcl":    ``,
		"pkg/_init.hcl": ``,
	})
	f := NewPathFinder(NewBuilder(), []string{root})

	d, err := f.FindSpec(ctx, unitname.MustParse("pkg.shared"), []string{filepath.Join(root, "pkg")})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "pkg.shared", d.Name.String())
	assert.Equal(t, filepath.Join(root, "shared.hcl"), d.Origin)
	assert.Equal(t, []string{root}, f.SearchPath())
}

type oneUnit struct{}

func (oneUnit) Register(p *platform.Provider) {
	p.RegisterUnit("sys", func(ctx context.Context, h *unit.Handle) error { return nil })
}

func TestPlatformFinder(t *testing.T) {
	f := NewPlatformFinder(platform.New(oneUnit{}))

	d, err := f.FindSpec(context.Background(), unitname.MustParse("sys"), nil)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, unit.Delegated, d.Kind)
	assert.Equal(t, "platform:sys", d.Origin)

	d, err = f.FindSpec(context.Background(), unitname.MustParse("other"), nil)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestFinderFunc(t *testing.T) {
	want := unit.NewFileDescriptor(unitname.MustParse("x"), "mem:x", unit.FormatHCL)
	var f Finder = FinderFunc(func(ctx context.Context, name unitname.Name, _ []string) (*unit.Descriptor, error) {
		return want, nil
	})
	got, err := f.FindSpec(context.Background(), unitname.MustParse("x"), nil)
	require.NoError(t, err)
	assert.Same(t, want, got)
}
