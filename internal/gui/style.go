package gui

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

//go:embed default.css
var defaultCSS string

// Rule is a single CSS rule: one selector and its property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".gui-row"
	Props    map[string]string // e.g. "background" -> "#1a1a1a"
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds the resolved values used to draw one row type.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Accent     color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Padding    int32
	FontSize   int32
}

// DefaultComputedStyle is used for properties no rule sets.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: color.RGBA{0x1a, 0x1a, 0x1a, 0xff},
		Color:      color.RGBA{0xee, 0xee, 0xee, 0xff},
		Accent:     color.RGBA{0x2f, 0xa1, 0xd6, 0xff},
		Border:     color.RGBA{0x2c, 0x2c, 0x2c, 0xff},
		Width:      245,
		Height:     27,
		Padding:    4,
		FontSize:   11,
	}
}

// DefaultStylesheet returns the built-in dark theme.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("gui: embedded stylesheet: %v", err))
	}
	return sheet
}

// LoadStylesheet parses the CSS file at path.
func LoadStylesheet(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stylesheet: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	return sheet, nil
}

// ParseCSS reads top-level rules ("selector { key: value; }"). Rules nested in at-rules
// such as @media are skipped.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)
	var cur *Rule
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			if atDepth > 0 {
				cur = nil
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: joinTokens(p.Values()), Props: map[string]string{}})
			cur = &sheet.Rules[len(sheet.Rules)-1]
		case css.DeclarationGrammar:
			if cur != nil {
				cur.Props[string(data)] = joinTokens(p.Values())
			}
		case css.EndRulesetGrammar:
			cur = nil
		}
	}
}

func joinTokens(toks []css.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// Resolve merges the rules matching ".class" for each class in order, then resolves them.
func (s *Stylesheet) Resolve(classes ...string) ComputedStyle {
	merged := map[string]string{}
	if s != nil {
		for _, class := range classes {
			for _, rule := range s.Rules {
				if rule.Selector == "."+class {
					for k, v := range rule.Props {
						merged[k] = v
					}
				}
			}
		}
	}
	return ResolveProps(merged)
}

// ParseHexColor parses #RGB or #RRGGBB (alpha 255).
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
}

// ParsePx parses a number with optional "px" suffix. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "accent-color":
			if c, ok := ParseHexColor(v); ok {
				out.Accent = c
			}
		case "border-color", "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.Height = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
