// Package raster implements the line and rectangle primitives shared by
// every buffer-backed backend. Backends supply bounds-checked pixel access;
// raster supplies the algorithms, so both panel encodings place identical
// pixels.
package raster

import "github.com/halfmoonlabs/discscreen/pixel"

// Surface is a bounds-checked pixel sink.
type Surface interface {
	Size() (w, h int)
	SetPixel(x, y int, c pixel.Native)
}

// Line draws with the Bresenham algorithm, endpoints inclusive.
func Line(s Surface, x0, y0, x1, y1 int, c pixel.Native) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// HLine draws a horizontal run of w pixels starting at (x, y).
func HLine(s Surface, x, y, w int, c pixel.Native) {
	for i := 0; i < w; i++ {
		s.SetPixel(x+i, y, c)
	}
}

// VLine draws a vertical run of h pixels starting at (x, y).
func VLine(s Surface, x, y, h int, c pixel.Native) {
	for i := 0; i < h; i++ {
		s.SetPixel(x, y+i, c)
	}
}

// FillRect fills the w x h rectangle anchored at (x, y).
func FillRect(s Surface, x, y, w, h int, c pixel.Native) {
	for row := 0; row < h; row++ {
		HLine(s, x, y+row, w, c)
	}
}

// Rect draws the rectangle outline.
func Rect(s Surface, x, y, w, h int, c pixel.Native) {
	if w <= 0 || h <= 0 {
		return
	}
	HLine(s, x, y, w, c)
	HLine(s, x, y+h-1, w, c)
	VLine(s, x, y+1, h-2, c)
	VLine(s, x+w-1, y+1, h-2, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
