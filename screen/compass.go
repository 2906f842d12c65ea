package screen

import (
	"math"

	"github.com/halfmoonlabs/discscreen/font8x8"
	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Compass draws a full-disc compass rose with a two-tone needle pointing
// at heading (degrees, 0 = North, clockwise). Headings outside [0,360) are
// normalized, never rejected.
func (s *Screen) Compass(heading float64, c pixel.Color) error {
	heading = math.Mod(heading, 360)
	if heading < 0 {
		heading += 360
	}
	s.beginWidget("compass", true)

	center := s.profile.Center()
	cx, cy := center.X, center.Y
	r := geom.Inset(s.profile.Bounds(), 12).Dx() / 2

	dark := s.native(pixel.Dark)
	s.drawCircle(cx, cy, r, dark)
	s.drawCircle(cx, cy, r*7/10, dark)

	// Cardinal labels just outside the rose. North stands out.
	labels := []struct {
		text string
		deg  float64
	}{{"N", 0}, {"E", 90}, {"S", 180}, {"W", 270}}
	for _, l := range labels {
		lx, ly := polar(cx, cy, float64(r+5), l.deg)
		col := pixel.Gray
		if l.text == "N" {
			col = pixel.White
		}
		if err := font8x8.Draw(s.backend, l.text, lx-geom.CharW/2, ly-geom.CharH/2, s.native(col)); err != nil {
			return err
		}
	}

	// Tick marks at the eight winds.
	light := s.native(pixel.Light)
	for deg := 0; deg < 360; deg += 45 {
		x0, y0 := polar(cx, cy, float64(r-6), float64(deg))
		x1, y1 := polar(cx, cy, float64(r), float64(deg))
		col := dark
		if deg%90 == 0 {
			col = light
		}
		s.backend.DrawLine(x0, y0, x1, y1, col)
	}

	// Needle: bright half towards the heading, dark half away.
	needleLen := float64(r) * 0.85
	const halfW = 3
	nx, ny := polar(cx, cy, needleLen, heading)
	sx, sy := polar(cx, cy, needleLen, heading+180)
	// Perpendicular base offsets for the needle width.
	rad := heading * math.Pi / 180
	px := int(math.Round(halfW * math.Cos(rad)))
	py := int(math.Round(halfW * math.Sin(rad)))

	s.fillTriangle(nx, ny, cx-px, cy-py, cx+px, cy+py, s.native(c))
	s.fillTriangle(sx, sy, cx-px, cy-py, cx+px, cy+py, dark)

	s.fillCircle(cx, cy, 3, s.native(pixel.Gray))
	return nil
}
