package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenedemos/internal/commands"
	"scenedemos/internal/config"
	"scenedemos/internal/demos"
)

func TestListPrintsEveryDemo(t *testing.T) {
	var out bytes.Buffer
	reg := newRegistry(&out)
	require.NoError(t, reg.Execute([]string{"list"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(demos.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "cubes"))
	assert.Contains(t, out.String(), "solar")
}

func TestEveryDemoIsACommand(t *testing.T) {
	reg := newRegistry(&bytes.Buffer{})
	names := reg.Names()
	for _, n := range demos.Names() {
		assert.Contains(t, names, n)
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "config")

	err := reg.Execute([]string{"nope"})
	assert.ErrorIs(t, err, commands.ErrUnknownCommand)
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	applyFlags(&cfg, 800, 0, 30)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, config.Default().Window.Height, cfg.Window.Height)
	assert.Equal(t, 30, cfg.Window.FPS)
}

func TestConfigWritesEffectiveFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(in, []byte("show_grid: true\n"), 0644))
	outPath := filepath.Join(dir, "out", "scenedemos.yaml")

	var out bytes.Buffer
	reg := newRegistry(&out)
	require.NoError(t, reg.Execute([]string{"config", "-config", in, "-o", outPath}))
	assert.Contains(t, out.String(), outPath)

	got, err := config.Load(outPath)
	require.NoError(t, err)
	assert.True(t, got.ShowGrid)
	assert.Equal(t, config.Default().Window, got.Window)
}
