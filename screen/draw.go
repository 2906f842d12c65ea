package screen

import (
	"fmt"
	"math"

	"github.com/halfmoonlabs/discscreen/font8x8"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Text draws text anchored at a cardinal position. scale 1 uses the native
// 8px cell, 2 and 3 the enlarged bitmap cells.
func (s *Screen) Text(text string, at Anchor, c pixel.Color, scale int) error {
	if scale < 1 || scale > 3 {
		return fmt.Errorf("%w: %d", font8x8.ErrInvalidScale, scale)
	}
	pt := resolve(s.profile, at, len(text), font8x8.CellBase*scale)
	s.beginWidget("text", false)
	if scale == 1 {
		return font8x8.Draw(s.backend, text, pt.X, pt.Y, s.native(c))
	}
	return font8x8.DrawScaled(s.backend, text, pt.X, pt.Y, s.native(c), scale)
}

// Pixel sets a single pixel.
func (s *Screen) Pixel(x, y int, c pixel.Color) {
	s.beginWidget("pixel", false)
	s.backend.SetPixel(x, y, s.native(c))
}

// Line draws a straight line between two points.
func (s *Screen) Line(x0, y0, x1, y1 int, c pixel.Color) {
	s.beginWidget("line", false)
	s.backend.DrawLine(x0, y0, x1, y1, s.native(c))
}

// Rect draws a rectangle outline, or a filled one when fill is set.
func (s *Screen) Rect(x, y, w, h int, c pixel.Color, fill bool) {
	s.beginWidget("rect", false)
	if fill {
		s.backend.FillRect(x, y, w, h, s.native(c))
	} else {
		s.backend.DrawRect(x, y, w, h, s.native(c))
	}
}

// Circle draws a circle outline, or a filled disc when fill is set.
func (s *Screen) Circle(x, y, r int, c pixel.Color, fill bool) {
	s.beginWidget("circle", false)
	n := s.native(c)
	if fill {
		s.fillCircle(x, y, r, n)
	} else {
		s.drawCircle(x, y, r, n)
	}
}

// drawCircle is the Bresenham midpoint circle. The backend clips.
func (s *Screen) drawCircle(cx, cy, r int, c pixel.Native) {
	x, y, d := r, 0, 1-r
	for x >= y {
		s.backend.SetPixel(cx+x, cy+y, c)
		s.backend.SetPixel(cx+y, cy+x, c)
		s.backend.SetPixel(cx-x, cy+y, c)
		s.backend.SetPixel(cx-y, cy+x, c)
		s.backend.SetPixel(cx+x, cy-y, c)
		s.backend.SetPixel(cx+y, cy-x, c)
		s.backend.SetPixel(cx-x, cy-y, c)
		s.backend.SetPixel(cx-y, cy-x, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// fillCircle fills a disc with horizontal chords.
func (s *Screen) fillCircle(cx, cy, r int, c pixel.Native) {
	for dy := -r; dy <= r; dy++ {
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		s.backend.DrawHLine(cx-dx, cy+dy, 2*dx+1, c)
	}
}

// drawArc sweeps a thick arc clockwise from startDeg. Angles follow the
// usual raster convention: 0 along +x, degrees increase towards +y.
// Thickness grows radially around r.
func (s *Screen) drawArc(cx, cy, r, startDeg, sweepDeg, thickness int, c pixel.Native) {
	if sweepDeg <= 0 {
		return
	}
	inner := -(thickness / 2)
	outer := r + inner + thickness - 1
	// At least one sample per pixel of outer-edge arc length, so adjacent
	// samples stay under a pixel apart and the sweep has no pinholes; the
	// two-per-degree floor covers short arcs on small radii.
	steps := sweepDeg * 2
	if arc := int(math.Ceil(float64(outer) * float64(sweepDeg) * math.Pi / 180)); arc > steps {
		steps = arc
	}
	for i := 0; i <= steps; i++ {
		angle := float64(startDeg)*math.Pi/180 + float64(i)*float64(sweepDeg)*math.Pi/(180*float64(steps))
		sin, cos := math.Sincos(angle)
		for dr := inner; dr < inner+thickness; dr++ {
			x := cx + int(math.Round(float64(r+dr)*cos))
			y := cy + int(math.Round(float64(r+dr)*sin))
			s.backend.SetPixel(x, y, c)
		}
	}
}

// fillTriangle rasterizes a filled triangle with integer scanline
// interpolation, so output is identical across platforms.
func (s *Screen) fillTriangle(x0, y0, x1, y1, x2, y2 int, c pixel.Native) {
	// Sort vertices by y.
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y2 < y0 {
		x0, y0, x2, y2 = x2, y2, x0, y0
	}
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	interp := func(ya, xa, yb, xb, y int) int {
		if yb == ya {
			return xa
		}
		return xa + (xb-xa)*(y-ya)/(yb-ya)
	}

	for y := y0; y <= y2; y++ {
		xl := interp(y0, x0, y2, x2, y)
		var xr int
		if y < y1 {
			xr = interp(y0, x0, y1, x1, y)
		} else {
			xr = interp(y1, x1, y2, x2, y)
		}
		if xl > xr {
			xl, xr = xr, xl
		}
		s.backend.DrawHLine(xl, y, xr-xl+1, c)
	}
}

// polar returns the point at distance length from (cx, cy) in compass
// orientation: 0 degrees is up, angles grow clockwise.
func polar(cx, cy int, length, deg float64) (int, int) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return cx + int(math.Round(length*sin)), cy - int(math.Round(length*cos))
}
