package screen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/halfmoonlabs/discscreen/font8x8"
	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// valueMaxChars caps the formatted width of the big value glyphs.
const valueMaxChars = 8

// ValueSpec parameterizes the big numeric value widget.
type ValueSpec struct {
	Value float64
	Unit  string // optional, drawn under the value
	Label string // optional, drawn above the value
	At    Anchor // Center, West or East
}

// GaugeSpec parameterizes the circular gauge.
type GaugeSpec struct {
	Value float64
	Min   float64
	Max   float64
	Unit  string // optional, drawn under the center value
}

// MenuSpec is the caller-held menu state, passed in on every call. The
// widget keeps no selection memory of its own.
type MenuSpec struct {
	Items    []string
	Selected int
}

// formatValue renders a float the way the value widgets display it: no
// exponent, no trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Title draws centered text on the fixed title row (y=20). Text wider than
// the screen is an error, not a truncation.
func (s *Screen) Title(text string, c pixel.Color) error {
	if len(text) > s.profile.CharsPerLine() {
		return fmt.Errorf("%w: title %q exceeds %d chars", ErrTextTooLong, text, s.profile.CharsPerLine())
	}
	s.beginWidget("title", false)
	x := s.profile.Center().X - font8x8.TextWidth(text, font8x8.CellBase)/2
	return font8x8.Draw(s.backend, text, x, geom.TitleY, s.native(c))
}

// Subtitle draws one or two centered lines against the bottom edge. A
// single line sits at height-20; two lines stack at height-21 and
// height-10 (11px pitch).
func (s *Screen) Subtitle(lines []string, c pixel.Color) error {
	if len(lines) > 2 {
		return fmt.Errorf("%w: got %d", ErrTooManyLines, len(lines))
	}
	for _, line := range lines {
		if len(line) > s.profile.CharsPerLine() {
			return fmt.Errorf("%w: subtitle %q exceeds %d chars", ErrTextTooLong, line, s.profile.CharsPerLine())
		}
	}
	if len(lines) == 0 {
		return nil
	}
	s.beginWidget("subtitle", false)

	ys := []int{s.profile.Height - geom.BottomMargin}
	if len(lines) == 2 {
		ys = []int{s.profile.Height - 21, s.profile.Height - 10}
	}
	n := s.native(c)
	for i, line := range lines {
		x := s.profile.Center().X - font8x8.TextWidth(line, font8x8.CellBase)/2
		if err := font8x8.Draw(s.backend, line, x, ys[i], n); err != nil {
			return err
		}
	}
	return nil
}

// Value draws a large (2x) number vertically centered in the content zone,
// with an optional small label above and medium unit below.
func (s *Screen) Value(spec ValueSpec, c pixel.Color) error {
	text := formatValue(spec.Value)
	if len(text) > valueMaxChars {
		return fmt.Errorf("%w: value %q exceeds %d chars", ErrTextTooLong, text, valueMaxChars)
	}

	cell := font8x8.CellBase * 2
	tw := font8x8.TextWidth(text, cell)

	// Center the value block in the content zone. With a unit the block is
	// value+gap+unit, so the value itself sits above the midline.
	blockH := cell
	if spec.At == Center && spec.Unit != "" {
		blockH = cell + cell/2 + geom.CharH
	}
	box := geom.CenterRect(s.profile.ContentZone(), tw, blockH)

	var x, y int
	switch spec.At {
	case Center:
		x, y = box.Min.X, box.Min.Y
	case West:
		x, y = s.profile.Width/4-tw/2, box.Min.Y
	case East:
		x, y = 3*s.profile.Width/4-tw/2, box.Min.Y
	default:
		return fmt.Errorf("%w: value anchor %s", ErrInvalidRange, spec.At)
	}

	s.beginWidget("value", false)

	if spec.Label != "" {
		lx := x + tw/2 - font8x8.TextWidth(spec.Label, font8x8.CellSmall)/2
		if err := font8x8.DrawSmall(s.backend, spec.Label, lx, y-geom.CharH-4, s.native(pixel.Gray)); err != nil {
			return err
		}
	}
	if err := font8x8.DrawScaled(s.backend, text, x, y, s.native(c), 2); err != nil {
		return err
	}
	if spec.Unit != "" {
		ux := x + tw/2 - font8x8.TextWidth(spec.Unit, font8x8.CellMedium)/2
		uy := y + cell + cell/2
		if err := font8x8.DrawMedium(s.backend, spec.Unit, ux, uy, s.native(pixel.Light)); err != nil {
			return err
		}
	}
	return nil
}

// Bar draws a horizontal progress bar below center: an 8px track spanning
// width-40 pixels over a DARK background. val is clamped into [0, maxVal].
func (s *Screen) Bar(val, maxVal float64, c pixel.Color) error {
	if maxVal <= 0 {
		return fmt.Errorf("%w: bar max %v", ErrInvalidRange, maxVal)
	}
	if val < 0 {
		val = 0
	}
	if val > maxVal {
		val = maxVal
	}
	s.beginWidget("bar", false)

	center := s.profile.Center()
	trackW := s.profile.Width - 40
	const trackH = 8
	bx := center.X - trackW/2
	by := center.Y + 20

	s.backend.FillRect(bx, by, trackW, trackH, s.native(pixel.Dark))
	fill := int(math.Round(float64(trackW) * val / maxVal))
	if fill > 0 {
		s.backend.FillRect(bx, by, fill, trackH, s.native(c))
	}
	return nil
}

// Gauge draws a 270 degree arc gauge opening at the bottom, the value in
// big glyphs at the center and the unit underneath. The fill sweep is
// proportional to the clamped value.
func (s *Screen) Gauge(spec GaugeSpec, c pixel.Color) error {
	if spec.Min == spec.Max {
		return fmt.Errorf("%w: gauge min == max (%v)", ErrInvalidRange, spec.Min)
	}
	text := formatValue(spec.Value)
	if len(text) > valueMaxChars {
		return fmt.Errorf("%w: gauge value %q exceeds %d chars", ErrTextTooLong, text, valueMaxChars)
	}
	s.beginWidget("gauge", false)

	center := s.profile.Center()
	radius := s.profile.Radius()
	thickness := radius / 9
	if thickness < 5 {
		thickness = 5
	}
	arcR := radius - thickness/2 - 1

	// The arc starts at the bottom-left (135 degrees in raster convention)
	// and sweeps 270 degrees clockwise, leaving the gap at the bottom.
	const startDeg, fullSweep = 135, 270

	v := spec.Value
	if spec.Max > spec.Min {
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
	} else {
		if v > spec.Min {
			v = spec.Min
		}
		if v < spec.Max {
			v = spec.Max
		}
	}
	sweep := int(math.Round(fullSweep * (v - spec.Min) / (spec.Max - spec.Min)))

	s.drawArc(center.X, center.Y, arcR, startDeg, fullSweep, thickness, s.native(pixel.Dark))
	s.drawArc(center.X, center.Y, arcR, startDeg, sweep, thickness, s.native(c))

	cell := font8x8.CellBase * 2
	x := center.X - font8x8.TextWidth(text, cell)/2
	if err := font8x8.DrawScaled(s.backend, text, x, center.Y-cell/2, s.native(pixel.White), 2); err != nil {
		return err
	}
	if spec.Unit != "" {
		ux := center.X - font8x8.TextWidth(spec.Unit, font8x8.CellBase)/2
		if err := font8x8.Draw(s.backend, spec.Unit, ux, center.Y+geom.CharH+2, s.native(pixel.Light)); err != nil {
			return err
		}
	}
	return nil
}

// Graph plot geometry. The vertical band is a fixed sub-rectangle, not
// derived from the profile; both panels use rows 38..90. Known limitation,
// kept as documented behavior.
const (
	graphTop    = 38
	graphHeight = 52
)

// Graph draws a scrolling line graph, newest sample last. When the series
// is wider than the plot, the oldest samples are dropped so exactly the
// newest plot-width samples remain. An empty series draws bare axes.
func (s *Screen) Graph(data []float64, minVal, maxVal float64, c pixel.Color) error {
	s.beginWidget("graph", false)

	gx := 20
	gw := s.profile.Width - 40
	gy := graphTop
	gh := graphHeight

	dark := s.native(pixel.Dark)
	s.backend.DrawVLine(gx, gy, gh, dark)
	s.backend.DrawHLine(gx, gy+gh, gw, dark)

	if len(data) > gw {
		data = data[len(data)-gw:]
	}
	if len(data) < 2 {
		return nil
	}

	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	n := s.native(c)
	prevX, prevY := 0, 0
	for i, v := range data {
		px := gx + i*(gw-1)/(len(data)-1)
		ratio := (v - minVal) / span
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		py := gy + gh - int(math.Round(ratio*float64(gh)))
		if i > 0 {
			s.backend.DrawLine(prevX, prevY, px, py, n)
		}
		prevX, prevY = px, py
	}
	return nil
}

// Menu row geometry.
const (
	menuTop   = 35
	menuPitch = 14
)

// Menu draws a scrollable list. The visible window follows the selection,
// preferring to keep it centered. Selection outside the item list is an
// error; the caller owns and validates its own state.
func (s *Screen) Menu(spec MenuSpec, c pixel.Color) error {
	if spec.Selected < 0 || spec.Selected >= len(spec.Items) {
		return fmt.Errorf("%w: menu selection %d of %d items", ErrIndexOutOfRange, spec.Selected, len(spec.Items))
	}
	s.beginWidget("menu", false)

	visible := (s.profile.Height - 40) / menuPitch
	if visible > len(spec.Items) {
		visible = len(spec.Items)
	}
	start := spec.Selected - visible/2
	if start > len(spec.Items)-visible {
		start = len(spec.Items) - visible
	}
	if start < 0 {
		start = 0
	}

	sel := s.native(c)
	dim := s.native(pixel.Gray)
	dark := s.native(pixel.Dark)
	for i := start; i < start+visible; i++ {
		rowY := menuTop + (i-start)*menuPitch
		if i == spec.Selected {
			s.backend.FillRect(15, rowY-2, s.profile.Width-30, menuPitch, dark)
			if err := font8x8.Draw(s.backend, "> "+spec.Items[i], 18, rowY, sel); err != nil {
				return err
			}
		} else {
			if err := font8x8.Draw(s.backend, "  "+spec.Items[i], 18, rowY, dim); err != nil {
				return err
			}
		}
	}
	return nil
}
