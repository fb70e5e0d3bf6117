package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scenedemos/internal/gui"
	"scenedemos/internal/stats"
)

const (
	statsFontSize = 10
	statsPadding  = 3
	statsBarTop   = 15
)

// Frame-rate widget colors per mode, foreground and background.
var statsColors = [...][2]color.RGBA{
	stats.ModeFPS: {rl.NewColor(0, 255, 255, 255), rl.NewColor(0, 0, 34, 230)},
	stats.ModeMS:  {rl.NewColor(0, 255, 0, 255), rl.NewColor(0, 34, 0, 230)},
	stats.ModeMB:  {rl.NewColor(255, 0, 136, 255), rl.NewColor(34, 0, 17, 230)},
}

// DrawStats draws the frame-rate widget in the top-left corner: the caption and a history
// graph of the current mode.
func DrawStats(s *stats.Stats) {
	fg, bg := statsColors[s.Mode()][0], statsColors[s.Mode()][1]
	rl.DrawRectangle(0, 0, stats.Width, stats.Height, bg)
	rl.DrawText(s.Text(), statsPadding, statsPadding, statsFontSize, fg)

	v := s.Value(s.Mode())
	graphH := float32(stats.Height - statsBarTop - statsPadding)
	graphW := stats.Width - 2*statsPadding
	rl.DrawRectangle(statsPadding, statsBarTop, int32(graphW), int32(graphH), rl.Fade(fg, 0.2))
	if len(v.History) == 0 || v.Max <= 0 {
		return
	}
	n := len(v.History)
	start := 0
	if n > graphW {
		start = n - graphW
	}
	for i, x := range v.History[start:] {
		h := float32(x) / float32(v.Max) * graphH
		if h > graphH {
			h = graphH
		}
		px := int32(statsPadding + graphW - (n - start) + i)
		rl.DrawRectangle(px, statsBarTop+int32(graphH-h), 1, int32(h), fg)
	}
}

// DrawPanel draws the rows of the last panel layout: background, border, label and the
// controller face of each row.
func DrawPanel(rows []gui.Row) {
	for _, row := range rows {
		st := row.Style
		b := row.Bounds
		x, y, w, h := int32(b.X), int32(b.Y), int32(b.W), int32(b.H)

		if st.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, st.Background)
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawLine(x, y+h-1, x+w, y+h-1, st.Border)
		}
		pad := st.Padding
		if pad <= 0 {
			pad = 4
		}
		font := st.FontSize
		textY := y + (h-font)/2

		switch row.Kind {
		case gui.RowTitle, gui.RowFolder:
			marker := "v "
			if row.Closed {
				marker = "> "
			}
			indent := int32(row.Depth) * 8
			rl.DrawText(marker+row.Label, x+pad+indent, textY, font, st.Color)
			continue
		}

		rl.DrawRectangle(x, y, 3, h, st.Accent)
		rl.DrawText(row.Label, x+pad+int32(row.Depth)*8, textY, font, st.Color)
		drawControl(row, font)
	}
}

func drawControl(row gui.Row, font int32) {
	st := row.Style
	c := row.Control
	cx, cy, cw, ch := int32(c.X), int32(c.Y), int32(c.W), int32(c.H)
	face := rl.NewColor(48, 48, 48, 255)
	textY := cy + (ch-font)/2

	switch row.Controller.Kind() {
	case gui.KindBool:
		rl.DrawRectangle(cx, cy, ch, ch, face)
		if row.Checked {
			rl.DrawRectangle(cx+3, cy+3, ch-6, ch-6, st.Accent)
		}
	case gui.KindFunc:
		rl.DrawRectangle(cx, cy, cw, ch, face)
		rl.DrawText(row.Label, cx+4, textY, font, st.Color)
	case gui.KindColor:
		r, g, b := row.Swatch.RGB()
		rl.DrawRectangle(cx, cy, cw, ch, rl.NewColor(r, g, b, 255))
		if row.Fraction >= 0 {
			mx := cx + int32(row.Fraction*float32(cw))
			rl.DrawRectangle(mx-1, cy, 2, ch, rl.White)
		}
		rl.DrawText(row.Value, cx+4, textY, font, contrast(r, g, b))
	default:
		if row.Fraction >= 0 {
			valueW := cw * 2 / 5
			trackW := cw - valueW - 4
			rl.DrawRectangle(cx, cy, trackW, ch, face)
			rl.DrawRectangle(cx, cy, int32(row.Fraction*float32(trackW)), ch, st.Accent)
			rl.DrawRectangle(cx+trackW+4, cy, valueW, ch, face)
			rl.DrawText(row.Value, cx+trackW+8, textY, font, st.Accent)
			return
		}
		rl.DrawRectangle(cx, cy, cw, ch, face)
		rl.DrawText(row.Value, cx+4, textY, font, st.Accent)
	}
}

// contrast picks black or white text for a swatch.
func contrast(r, g, b uint8) color.RGBA {
	if int(r)*299+int(g)*587+int(b)*114 > 128000 {
		return rl.Black
	}
	return rl.White
}
