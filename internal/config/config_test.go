package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesOnlyWhatFileNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenedemos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 800
  height: 600
textures:
  max_size: 512
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 600, c.Window.Height)
	assert.Equal(t, 60, c.Window.FPS)
	assert.Equal(t, 512, c.Textures.MaxSize)
	assert.Contains(t, c.Textures.URLs, TextureMaple)
}

func TestLoadDisplayOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenedemos.yaml")
	require.NoError(t, os.WriteFile(path, []byte("show_grid: true\npanel_stylesheet: themes/light.css\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.ShowGrid)
	assert.Equal(t, "themes/light.css", c.PanelStylesheet)
	assert.False(t, Default().ShowGrid)
	assert.Empty(t, Default().PanelStylesheet)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0644))
	c, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.yaml")
	c := Default()
	c.Window.Title = "picker"
	c.ShowStats = false
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(PathEnv, "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv(PathEnv, "/tmp/x.yaml")
	assert.Equal(t, "/tmp/x.yaml", Path())
}
