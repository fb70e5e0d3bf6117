package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestCountsFramesPerSecond(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := NewWithSources(clk.now, func() uint64 { return 3 << 20 })

	for i := 0; i < 60; i++ {
		s.Begin()
		clk.t = clk.t.Add(16 * time.Millisecond)
		s.End()
		clk.t = clk.t.Add(time.Second/60 - 16*time.Millisecond)
	}
	// 60 frames over 1.0 s, counted when the 61st frame ends just past the second.
	s.Begin()
	clk.t = clk.t.Add(16 * time.Millisecond)
	s.End()

	fps := s.Value(ModeFPS)
	require.Len(t, fps.History, 1)
	assert.InDelta(t, 61/1.016, fps.Current, 0.5)
	assert.InDelta(t, 16, s.Value(ModeMS).Current, 1e-6)
	assert.InDelta(t, 3, s.Value(ModeMB).Current, 1e-9)
}

func TestTextRefreshesEveryThirtyFrames(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	s := NewWithSources(clk.now, func() uint64 { return 0 })

	clk.t = clk.t.Add(10 * time.Millisecond)
	s.Update()
	assert.Equal(t, "FPS", s.Text(), "no frame rate sample yet")
	s.ShowPanel(ModeMS)
	first := s.Text()
	assert.Equal(t, "10 MS (10-10)", first)

	for i := 0; i < 28; i++ {
		clk.t = clk.t.Add(20 * time.Millisecond)
		s.Update()
	}
	assert.Equal(t, first, s.Text(), "text is cached between refreshes")

	clk.t = clk.t.Add(20 * time.Millisecond)
	s.Update()
	assert.Equal(t, "20 MS (10-20)", s.Text())
}

func TestNextModeCycles(t *testing.T) {
	s := New()
	assert.Equal(t, ModeFPS, s.Mode())
	s.NextMode()
	assert.Equal(t, ModeMS, s.Mode())
	s.NextMode()
	assert.Equal(t, ModeMB, s.Mode())
	s.NextMode()
	assert.Equal(t, ModeFPS, s.Mode())
	assert.Equal(t, "FPS", s.Text())
}

func TestHistoryIsBounded(t *testing.T) {
	var v Value
	for i := 0; i < 200; i++ {
		v.record(float64(i))
	}
	assert.Len(t, v.History, historyLen)
	assert.Equal(t, float64(199), v.Current)
	assert.Zero(t, v.Min)
	assert.Equal(t, float64(199), v.Max)
}

func TestContains(t *testing.T) {
	s := New()
	assert.True(t, s.Contains(10, 10))
	assert.False(t, s.Contains(Width+1, 10))
}
