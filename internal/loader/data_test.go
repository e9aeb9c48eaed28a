package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/testutil"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
	"github.com/zclconf/go-cty/cty"
)

func loadData(t *testing.T, file, content string, format unit.Format) (*unit.Handle, error) {
	t.Helper()
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteTree(t, map[string]string{file: content})
	h := unit.NewHandle(unit.NewFileDescriptor(unitname.MustParse("settings"), filepath.Join(dir, file), format))
	return h, (&DataLoader{Format: format}).Exec(ctx, h)
}

func TestDataLoader_Formats(t *testing.T) {
	tests := []struct {
		file    string
		format  unit.Format
		content string
	}{
		{"settings.yaml", unit.FormatYAML, "name: svc\nport: 8080\ntags: [a, b]\n"},
		{"settings.toml", unit.FormatTOML, "name = \"svc\"\nport = 8080\ntags = [\"a\", \"b\"]\n"},
		{"settings.json", unit.FormatJSON, `{"name": "svc", "port": 8080, "tags": ["a", "b"]}`},
	}
	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			h, err := loadData(t, tc.file, tc.content, tc.format)
			require.NoError(t, err)

			assert.Equal(t, []string{"name", "port", "tags"}, h.Keys())
			assert.Equal(t, "svc", data(t, h, "name").AsString())
			assert.True(t, data(t, h, "port").Equals(cty.NumberIntVal(8080)).True())
			assert.Equal(t, 2, data(t, h, "tags").LengthInt())
		})
	}
}

func TestDataLoader_EmptyYAML(t *testing.T) {
	h, err := loadData(t, "settings.yaml", "", unit.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
}

func TestDataLoader_RejectsNonMappings(t *testing.T) {
	_, err := loadData(t, "settings.yaml", "- a\n- b\n", unit.FormatYAML)
	assert.ErrorContains(t, err, "top level must be a mapping")

	_, err = loadData(t, "settings.json", `[1, 2]`, unit.FormatJSON)
	assert.ErrorContains(t, err, "top level must be a mapping")

	_, err = loadData(t, "settings.toml", "not toml at all [", unit.FormatTOML)
	assert.ErrorContains(t, err, "failed to decode")
}
