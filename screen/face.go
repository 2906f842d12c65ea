package screen

import (
	"fmt"

	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Expression names a face bitmap.
type Expression string

const (
	Happy     Expression = "happy"
	Sad       Expression = "sad"
	Surprised Expression = "surprised"
	Sleeping  Expression = "sleeping"
	Angry     Expression = "angry"
	Love      Expression = "love"
)

// faceGrid is the logical face resolution. Faces are pixel art on an 8x8
// grid, blown up to a cell size proportional to the screen width.
const faceGrid = 8

// faces holds one row byte per grid row, bit 0 leftmost. All expressions
// share the circular outline and differ in eyes and mouth.
var faces = map[Expression][faceGrid]byte{
	Happy:     {0x3C, 0x42, 0xA5, 0x81, 0xA5, 0x99, 0x42, 0x3C},
	Sad:       {0x3C, 0x42, 0xA5, 0x81, 0x99, 0xA5, 0x42, 0x3C},
	Surprised: {0x3C, 0x42, 0xA5, 0x81, 0x99, 0x99, 0x42, 0x3C},
	Sleeping:  {0x3C, 0x42, 0xE7, 0x81, 0x81, 0x99, 0x42, 0x3C},
	Angry:     {0x3C, 0x66, 0xA5, 0x81, 0x99, 0xA5, 0x42, 0x3C},
	Love:      {0x3C, 0x66, 0xE7, 0x81, 0xA5, 0x99, 0x42, 0x3C},
}

// Face draws an expression centered on the disc. The cell size scales with
// the screen width (11px per cell on the 128px panel); the compact variant
// uses a smaller cell and centers in the content zone so a title and
// subtitle fit around it. Unknown expressions are an error, no fallback.
func (s *Screen) Face(expr Expression, c pixel.Color, compact bool) error {
	grid, ok := faces[expr]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
	}
	s.beginWidget("face", !compact)

	cell := s.profile.Width * 11 / 128
	if compact {
		cell = s.profile.Width * 7 / 128
	}
	size := faceGrid * cell

	box := geom.CenterRect(s.profile.Bounds(), size, size)
	if compact {
		box = geom.CenterRect(s.profile.ContentZone(), size, size)
	}
	x0, y0 := box.Min.X, box.Min.Y

	n := s.native(c)
	for row := 0; row < faceGrid; row++ {
		bits := grid[row]
		if bits == 0 {
			continue
		}
		for col := 0; col < faceGrid; col++ {
			if bits&(1<<col) != 0 {
				s.backend.FillRect(x0+col*cell, y0+row*cell, cell, cell, n)
			}
		}
	}
	return nil
}
