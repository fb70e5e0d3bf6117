package commands

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteParsesFlags(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("cubes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	width := fs.Int("width", 0, "")
	ran := false
	r.Register("cubes", "spinning cubes", fs, func() error {
		ran = true
		return nil
	})

	require.NoError(t, r.Execute([]string{"cubes", "-width", "640"}))
	assert.True(t, ran)
	assert.Equal(t, 640, *width)

	assert.Error(t, r.Execute([]string{"cubes", "-nope"}))
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Execute(nil))
	assert.ErrorIs(t, r.Execute([]string{"teapot"}), ErrUnknownCommand)
}

func TestUsageListsSortedNames(t *testing.T) {
	r := NewRegistry()
	r.Register("solar", "group hierarchy", flag.NewFlagSet("solar", flag.ContinueOnError), func() error { return nil })
	r.Register("car", "toy car", flag.NewFlagSet("car", flag.ContinueOnError), func() error { return nil })
	assert.Equal(t, []string{"car", "solar"}, r.Names())

	var buf bytes.Buffer
	r.Usage(&buf)
	assert.Equal(t, "  car        toy car\n  solar      group hierarchy\n", buf.String())
}
