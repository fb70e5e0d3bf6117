// Package gui is a small parameter panel: folders of controllers bound to fields, laid out as
// rows that a renderer draws and a pointer edits. It holds no graphics state.
package gui

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"

	"scenedemos/internal/scene"
)

// Kind identifies what a controller edits.
type Kind int

const (
	KindNumber Kind = iota
	KindColor
	KindBool
	KindFunc
)

// Controller binds one field (or action) to a panel row.
type Controller struct {
	kind     Kind
	label    string
	num      *float32
	min, max float32
	hasMin   bool
	hasMax   bool
	step     float32
	col      *scene.Color
	flag     *bool
	fn       func()
	onChange func()
}

// Name sets the row label.
func (c *Controller) Name(label string) *Controller {
	c.label = label
	return c
}

// OnChange registers fn to run after the controller writes a new value.
func (c *Controller) OnChange(fn func()) *Controller {
	c.onChange = fn
	return c
}

// Min sets the lower bound of a number controller.
func (c *Controller) Min(v float32) *Controller {
	c.min, c.hasMin = v, true
	return c
}

// Max sets the upper bound of a number controller.
func (c *Controller) Max(v float32) *Controller {
	c.max, c.hasMax = v, true
	return c
}

// Step sets the increment values snap to.
func (c *Controller) Step(v float32) *Controller {
	c.step = v
	return c
}

// Label returns the row label.
func (c *Controller) Label() string { return c.label }

// Kind returns what the controller edits.
func (c *Controller) Kind() Kind { return c.kind }

func (c *Controller) slider() bool {
	return c.kind == KindNumber && c.hasMin && c.hasMax && c.max > c.min
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

func (c *Controller) setNumber(v float32) {
	if c.step > 0 {
		var base float32
		if c.hasMin {
			base = c.min
		}
		v = base + math32.Floor((v-base)/c.step+0.5)*c.step
	}
	if c.hasMin && v < c.min {
		v = c.min
	}
	if c.hasMax && v > c.max {
		v = c.max
	}
	if v == *c.num {
		return
	}
	*c.num = v
	c.changed()
}

// setHue keeps saturation and value. A grey has no hue to keep, so it jumps to the fully
// saturated color, and black to full brightness.
func (c *Controller) setHue(fraction float32) {
	_, s, v := c.col.HSV()
	if s == 0 {
		s = 1
	}
	if v == 0 {
		v = 1
	}
	next := scene.HSVToColor(clamp01(fraction)*359.99, s, v)
	if next == *c.col {
		return
	}
	*c.col = next
	c.changed()
}

func (c *Controller) valueText() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(float64(*c.num), 'f', decimals(c.step), 32)
	case KindColor:
		return fmt.Sprintf("#%06x", uint32(*c.col))
	}
	return ""
}

func (c *Controller) fraction() float32 {
	switch {
	case c.slider():
		return clamp01((*c.num - c.min) / (c.max - c.min))
	case c.kind == KindColor:
		h, _, _ := c.col.HSV()
		return h / 360
	}
	return -1
}

// decimals returns how many fraction digits step needs, 2 when unset.
func decimals(step float32) int {
	if step <= 0 {
		return 2
	}
	s := strconv.FormatFloat(float64(step), 'f', -1, 32)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return len(s) - i - 1
		}
	}
	return 0
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

type entry struct {
	ctrl   *Controller
	folder *Folder
}

// Folder is a titled, collapsible group of controllers and subfolders.
type Folder struct {
	Title   string
	Closed  bool
	entries []entry
}

func (f *Folder) add(c *Controller) *Controller {
	f.entries = append(f.entries, entry{ctrl: c})
	return c
}

// AddNumber binds a free number field; set Min, Max and Step on the result as needed.
// With both bounds set it becomes a slider.
func (f *Folder) AddNumber(label string, v *float32) *Controller {
	return f.add(&Controller{kind: KindNumber, label: label, num: v})
}

// AddSlider binds a number field to a slider over [min, max].
func (f *Folder) AddSlider(label string, v *float32, min, max, step float32) *Controller {
	return f.AddNumber(label, v).Min(min).Max(max).Step(step)
}

// AddColor binds a color field. The row edits its hue.
func (f *Folder) AddColor(label string, c *scene.Color) *Controller {
	return f.add(&Controller{kind: KindColor, label: label, col: c})
}

// AddBool binds a checkbox.
func (f *Folder) AddBool(label string, b *bool) *Controller {
	return f.add(&Controller{kind: KindBool, label: label, flag: b})
}

// AddFunc adds a button that calls fn.
func (f *Folder) AddFunc(label string, fn func()) *Controller {
	return f.add(&Controller{kind: KindFunc, label: label, fn: fn})
}

// AddFolder adds an open subfolder.
func (f *Folder) AddFolder(title string) *Folder {
	sub := &Folder{Title: title}
	f.entries = append(f.entries, entry{folder: sub})
	return sub
}

// Controllers returns the folder's own controllers in order.
func (f *Folder) Controllers() []*Controller {
	var out []*Controller
	for _, e := range f.entries {
		if e.ctrl != nil {
			out = append(out, e.ctrl)
		}
	}
	return out
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RowKind tells a renderer how to draw a row.
type RowKind int

const (
	RowTitle RowKind = iota
	RowFolder
	RowController
)

// Row is one laid-out line of the panel.
type Row struct {
	Kind    RowKind
	Bounds  Rect
	Control Rect // value area: slider track, checkbox or button face
	Label   string
	Value   string
	// Fraction is the filled part of a slider or hue bar in [0, 1]; -1 when the row has no bar.
	Fraction float32
	Checked  bool
	Swatch   scene.Color
	Depth    int
	Closed   bool
	Style    ComputedStyle

	Controller *Controller
	folder     *Folder
}

// Pointer is the mouse state for one frame.
type Pointer struct {
	X, Y     float32
	Down     bool // held this frame
	Pressed  bool // went down this frame
	Released bool // went up this frame
}

// Panel is the root folder plus layout and pointer state.
type Panel struct {
	Folder

	sheet  *Stylesheet
	rows   []Row
	bounds Rect

	active     *Controller
	activeRow  Row
	dragStartX float32
	dragStartV float32
}

// New returns an open panel with the default stylesheet.
func New() *Panel {
	return &Panel{Folder: Folder{Title: "Controls"}, sheet: DefaultStylesheet()}
}

// SetStylesheet replaces the stylesheet; nil restores the default.
func (p *Panel) SetStylesheet(s *Stylesheet) {
	if s == nil {
		s = DefaultStylesheet()
	}
	p.sheet = s
}

// Width returns the panel width set by the stylesheet.
func (p *Panel) Width() float32 {
	return float32(p.sheet.Resolve("gui").Width)
}

// LayoutRight lays the panel out with its top-right corner at (right, y).
func (p *Panel) LayoutRight(right, y float32) []Row {
	return p.Layout(right-p.Width(), y)
}

// Layout positions the panel with its top-left corner at (x, y) and returns its rows. The rows
// stay valid for HandlePointer until the next Layout.
func (p *Panel) Layout(x, y float32) []Row {
	width := p.Width()
	p.rows = p.rows[:0]

	title := p.sheet.Resolve("gui", "gui-title")
	p.rows = append(p.rows, Row{
		Kind:     RowTitle,
		Bounds:   Rect{x, y, width, float32(title.Height)},
		Label:    p.Title,
		Fraction: -1,
		Closed:   p.Closed,
		Style:    title,
	})
	cursor := y + float32(title.Height)
	if !p.Closed {
		cursor = p.layoutFolder(&p.Folder, x, cursor, width, 0)
	}
	p.bounds = Rect{x, y, width, cursor - y}
	return p.rows
}

func (p *Panel) layoutFolder(f *Folder, x, y, width float32, depth int) float32 {
	for _, e := range f.entries {
		if e.folder != nil {
			st := p.sheet.Resolve("gui", "gui-folder")
			p.rows = append(p.rows, Row{
				Kind:     RowFolder,
				Bounds:   Rect{x, y, width, float32(st.Height)},
				Label:    e.folder.Title,
				Fraction: -1,
				Depth:    depth,
				Closed:   e.folder.Closed,
				Style:    st,
				folder:   e.folder,
			})
			y += float32(st.Height)
			if !e.folder.Closed {
				y = p.layoutFolder(e.folder, x, y, width, depth+1)
			}
			continue
		}
		c := e.ctrl
		st := p.sheet.Resolve("gui", "gui-row", rowClass(c.kind))
		h := float32(st.Height)
		pad := float32(st.Padding)
		labelW := width * 0.4
		row := Row{
			Kind:       RowController,
			Bounds:     Rect{x, y, width, h},
			Control:    Rect{x + labelW, y + pad, width - labelW - pad, h - 2*pad},
			Label:      c.label,
			Value:      c.valueText(),
			Fraction:   c.fraction(),
			Depth:      depth,
			Style:      st,
			Controller: c,
		}
		switch c.kind {
		case KindBool:
			row.Checked = *c.flag
		case KindColor:
			row.Swatch = *c.col
		}
		p.rows = append(p.rows, row)
		y += h
	}
	return y
}

func rowClass(k Kind) string {
	switch k {
	case KindColor:
		return "gui-color"
	case KindBool:
		return "gui-bool"
	case KindFunc:
		return "gui-func"
	}
	return "gui-number"
}

// Bounds returns the area covered by the last layout.
func (p *Panel) Bounds() Rect {
	return p.bounds
}

// Contains reports whether (x, y) is over the panel as last laid out.
func (p *Panel) Contains(x, y float32) bool {
	return p.bounds.Contains(x, y)
}

// HandlePointer applies one frame of pointer input to the rows of the last Layout. It reports
// whether the panel consumed the input (pointer over the panel or a drag in progress).
func (p *Panel) HandlePointer(ptr Pointer) bool {
	consumed := p.active != nil || p.bounds.Contains(ptr.X, ptr.Y)

	if ptr.Pressed {
		if row, ok := p.rowAt(ptr.X, ptr.Y); ok {
			p.press(row, ptr.X)
		}
	} else if ptr.Down && p.active != nil {
		p.drag(ptr.X)
	}
	if ptr.Released || (!ptr.Down && !ptr.Pressed) {
		p.active = nil
	}
	return consumed
}

func (p *Panel) rowAt(x, y float32) (Row, bool) {
	for _, r := range p.rows {
		if r.Bounds.Contains(x, y) {
			return r, true
		}
	}
	return Row{}, false
}

func (p *Panel) press(row Row, x float32) {
	switch row.Kind {
	case RowTitle:
		p.Closed = !p.Closed
		return
	case RowFolder:
		row.folder.Closed = !row.folder.Closed
		return
	}
	c := row.Controller
	switch c.kind {
	case KindBool:
		*c.flag = !*c.flag
		c.changed()
	case KindFunc:
		if c.fn != nil {
			c.fn()
		}
		c.changed()
	case KindNumber, KindColor:
		p.active = c
		p.activeRow = row
		p.dragStartX = x
		if c.kind == KindNumber {
			p.dragStartV = *c.num
		}
		if c.slider() || c.kind == KindColor {
			p.drag(x)
		}
	}
}

func (p *Panel) drag(x float32) {
	c := p.active
	track := p.activeRow.Control
	switch {
	case c.kind == KindColor:
		c.setHue((x - track.X) / track.W)
	case c.slider():
		f := clamp01((x - track.X) / track.W)
		c.setNumber(c.min + f*(c.max-c.min))
	default:
		step := c.step
		if step <= 0 {
			step = 0.01
		}
		c.setNumber(p.dragStartV + (x-p.dragStartX)*step)
	}
}
