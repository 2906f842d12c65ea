package screen

import (
	"fmt"

	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Watch draws an analog clock face. Hours wrap onto the 12-hour dial (the
// hour hand includes the minute fraction); minutes and seconds outside
// [0,60) are rejected.
func (s *Screen) Watch(hours, minutes, seconds int, c pixel.Color) error {
	if minutes < 0 || minutes >= 60 {
		return fmt.Errorf("%w: minutes %d", ErrInvalidRange, minutes)
	}
	if seconds < 0 || seconds >= 60 {
		return fmt.Errorf("%w: seconds %d", ErrInvalidRange, seconds)
	}
	s.beginWidget("watch", true)

	center := s.profile.Center()
	cx, cy := center.X, center.Y
	dial := geom.Inset(s.profile.Bounds(), 8).Dx() / 2

	dark := s.native(pixel.Dark)
	light := s.native(pixel.Light)
	s.drawCircle(cx, cy, dial, dark)

	// Hour ticks; the quarters stand out.
	for deg := 0; deg < 360; deg += 30 {
		x0, y0 := polar(cx, cy, float64(dial-5), float64(deg))
		x1, y1 := polar(cx, cy, float64(dial-1), float64(deg))
		col := dark
		if deg%90 == 0 {
			col = light
		}
		s.backend.DrawLine(x0, y0, x1, y1, col)
	}

	hourDeg := float64(hours%12)*30 + float64(minutes)*0.5
	minuteDeg := float64(minutes)*6 + float64(seconds)*0.1
	secondDeg := float64(seconds) * 6

	n := s.native(c)
	s.drawHand(cx, cy, float64(dial)*0.50, hourDeg, 2, n)
	s.drawHand(cx, cy, float64(dial)*0.75, minuteDeg, 1, n)
	s.drawHand(cx, cy, float64(dial)*0.85, secondDeg, 0, s.native(pixel.Red))

	s.fillCircle(cx, cy, 3, s.native(pixel.Gray))
	return nil
}

// drawHand draws a clock hand as a line from the pivot, fattened by
// parallel lines offset perpendicular to its direction.
func (s *Screen) drawHand(cx, cy int, length, deg float64, halfW int, c pixel.Native) {
	tx, ty := polar(cx, cy, length, deg)
	s.backend.DrawLine(cx, cy, tx, ty, c)
	for w := 1; w <= halfW; w++ {
		// Perpendicular offset: rotate the direction by 90 degrees.
		ox, oy := polar(0, 0, float64(w), deg+90)
		s.backend.DrawLine(cx+ox, cy+oy, tx+ox, ty+oy, c)
		s.backend.DrawLine(cx-ox, cy-oy, tx-ox, ty-oy, c)
	}
}
