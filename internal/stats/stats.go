// Package stats counts frames per second, frame time and heap size for an on-screen widget.
// It only measures; the renderer draws the text and graph it exposes.
package stats

import (
	"fmt"
	"runtime"
	"time"
)

// Mode selects which measurement the widget shows.
type Mode int

const (
	ModeFPS Mode = iota
	ModeMS
	ModeMB
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeFPS:
		return "FPS"
	case ModeMS:
		return "MS"
	case ModeMB:
		return "MB"
	}
	return "?"
}

const (
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
	historyLen     = 74

	Width  = 80
	Height = 48
)

// Value is one measurement with the extremes seen so far.
type Value struct {
	Current, Min, Max float64
	History           []float64
}

func (v *Value) record(x float64) {
	v.Current = x
	if len(v.History) == 0 || x < v.Min {
		v.Min = x
	}
	if len(v.History) == 0 || x > v.Max {
		v.Max = x
	}
	v.History = append(v.History, x)
	if len(v.History) > historyLen {
		v.History = v.History[len(v.History)-historyLen:]
	}
}

// Stats is a frame-rate counter. Call Update once per frame.
type Stats struct {
	mode    Mode
	now     func() time.Time
	heap    func() uint64
	values  [modeCount]Value
	frames  int
	prev    time.Time
	begin   time.Time
	counter uint32
	text    string
}

// New returns a counter driven by the wall clock and the Go heap.
func New() *Stats {
	return NewWithSources(time.Now, func() uint64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return m.Alloc
	})
}

// NewWithSources returns a counter reading time and heap size from the given functions.
func NewWithSources(now func() time.Time, heap func() uint64) *Stats {
	t := now()
	return &Stats{now: now, heap: heap, prev: t, begin: t}
}

// Begin marks the start of a frame.
func (s *Stats) Begin() {
	s.begin = s.now()
}

// End marks the end of a frame: it records the frame time and, once a second has passed since
// the last sample, the frame rate and heap size.
func (s *Stats) End() time.Time {
	s.frames++
	t := s.now()
	s.values[ModeMS].record(float64(t.Sub(s.begin)) / float64(time.Millisecond))
	if elapsed := t.Sub(s.prev); elapsed >= time.Second {
		s.values[ModeFPS].record(float64(s.frames) / elapsed.Seconds())
		s.values[ModeMB].record(float64(s.heap()) / (1024 * 1024))
		s.prev = t
		s.frames = 0
	}
	return t
}

// Update ends the current frame and begins the next one.
func (s *Stats) Update() {
	s.begin = s.End()
	s.counter++
	if s.counter%updateInterval == 0 || s.text == "" {
		s.refreshText()
	}
}

func (s *Stats) refreshText() {
	v := s.values[s.mode]
	if len(v.History) == 0 {
		s.text = s.mode.String()
		return
	}
	s.text = fmt.Sprintf("%.0f %s (%.0f-%.0f)", v.Current, s.mode, v.Min, v.Max)
}

// Text returns the caption for the current mode.
func (s *Stats) Text() string {
	return s.text
}

// Mode returns the shown measurement.
func (s *Stats) Mode() Mode {
	return s.mode
}

// ShowPanel switches to mode.
func (s *Stats) ShowPanel(m Mode) {
	if m < 0 || m >= modeCount {
		return
	}
	s.mode = m
	s.refreshText()
}

// NextMode cycles FPS, MS, MB, as clicking the widget does.
func (s *Stats) NextMode() {
	s.ShowPanel((s.mode + 1) % modeCount)
}

// Value returns the measurement for m.
func (s *Stats) Value(m Mode) Value {
	return s.values[m]
}

// Contains reports whether (x, y) is over the widget in its top-left corner.
func (s *Stats) Contains(x, y float32) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}
