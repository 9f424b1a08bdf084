package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 1000.0, c.Width)
	assert.Equal(t, 1000.0, c.Height)
	assert.Equal(t, 12, c.Sites)
	assert.Equal(t, GeneratorGrid, c.Generator)
	assert.NoError(t, c.Validate())
}

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(`
Width = 400
Sites = 50
Generator = "random"
Seed = 7
Delaunay = true
LogLevel = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, 400.0, c.Width)
	assert.Equal(t, 1000.0, c.Height, "unset keys keep defaults")
	assert.Equal(t, 50, c.Sites)
	assert.Equal(t, GeneratorRandom, c.Generator)
	assert.Equal(t, int64(7), c.Seed)
	assert.True(t, c.Delaunay)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"syntax", `Width = `, "decode"},
		{"unknown key", `Colour = "red"`, "unknown keys: Colour"},
		{"size", `Height = 0`, "plot size must be positive"},
		{"generator", `Generator = "hex"`, `unknown generator "hex"`},
		{"sites", `Sites = -1`, "negative site count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "voronoi.toml")
	require.NoError(t, os.WriteFile(path, []byte("Addr = \":9090\"\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Addr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
