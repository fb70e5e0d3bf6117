package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

var t0 = time.Unix(1000, 0)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestQuadraticInOutMidpoint(t *testing.T) {
	x := float32(-4)
	fn, err := EasingByName("Quadratic.InOut")
	require.NoError(t, err)
	tw := New(time.Second).To(&x, 4).Easing(fn).Start(t0)

	assert.True(t, tw.Update(at(0)))
	assert.InDelta(t, -4, x, 1e-4)
	assert.True(t, tw.Update(at(500)))
	assert.InDelta(t, 0, x, 1e-4)
	assert.True(t, tw.Update(at(250)))
	assert.Less(t, x, float32(-2), "eased start is slower than linear")

	assert.False(t, tw.Update(at(1200)))
	assert.InDelta(t, 4, x, 1e-4)
	assert.False(t, tw.IsPlaying())
}

func TestCallbacksFireInOrder(t *testing.T) {
	var events []string
	x := float32(0)
	tw := New(100*time.Millisecond).To(&x, 1).
		OnStart(func() { events = append(events, "start") }).
		OnUpdate(func() { events = append(events, "update") }).
		OnComplete(func() { events = append(events, "complete") }).
		OnStop(func() { events = append(events, "stop") }).
		Start(t0)

	tw.Update(at(50))
	tw.Update(at(100))
	tw.Stop()
	assert.Equal(t, []string{"start", "update", "update", "complete"}, events)
}

func TestStopFiresOnStop(t *testing.T) {
	stopped := 0
	x := float32(0)
	tw := New(time.Second).To(&x, 10).OnStop(func() { stopped++ }).Start(t0)
	tw.Update(at(100))
	tw.Stop()
	tw.Stop()
	assert.Equal(t, 1, stopped)
	assert.False(t, tw.Update(at(500)))
	assert.InDelta(t, 1, x, 1e-4)
}

func TestDelay(t *testing.T) {
	x := float32(0)
	started := false
	tw := New(time.Second).To(&x, 1).Delay(500 * time.Millisecond).
		OnStart(func() { started = true }).Start(t0)

	assert.True(t, tw.Update(at(400)))
	assert.False(t, started)
	assert.Zero(t, x)

	tw.Update(at(1000))
	assert.True(t, started)
	assert.InDelta(t, 0.5, x, 1e-4)
}

func TestRepeatYoyo(t *testing.T) {
	x := float32(0)
	completed := false
	tw := New(time.Second).To(&x, 1).Repeat(1).Yoyo(true).
		OnComplete(func() { completed = true }).Start(t0)

	assert.True(t, tw.Update(at(1000)))
	assert.InDelta(t, 1, x, 1e-4)
	assert.True(t, tw.Update(at(1250)))
	assert.InDelta(t, 0.75, x, 1e-4)
	assert.False(t, tw.Update(at(2000)))
	assert.InDelta(t, 0, x, 1e-4)
	assert.True(t, completed)
}

func TestInfiniteRepeat(t *testing.T) {
	x := float32(0)
	tw := New(100*time.Millisecond).To(&x, 1).Repeat(Infinite).Start(t0)
	for ms := 100; ms <= 10000; ms += 100 {
		require.True(t, tw.Update(at(ms)))
	}
}

func TestGroupDropsFinished(t *testing.T) {
	a, b := float32(0), float32(0)
	var g Group
	g.Add(
		New(100*time.Millisecond).To(&a, 1).Start(t0),
		New(time.Second).To(&b, 1).Easing(ease.Linear).Start(t0),
	)
	g.Update(at(200))
	assert.Equal(t, 1, g.Len())
	assert.InDelta(t, 1, a, 1e-4)
	assert.InDelta(t, 0.2, b, 1e-4)
	g.Update(at(1000))
	assert.Zero(t, g.Len())
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"Linear.None", "bounce.out", " Elastic.InOut "} {
		fn, err := EasingByName(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 1, fn(1, 0, 1, 1), 1e-4, name)
	}
	_, err := EasingByName("Wobbly.In")
	assert.ErrorIs(t, err, ErrUnknownEasing)
}
