// Package geom holds the per-screen geometry constants and the rectangle
// helpers every widget layout is derived from. A Profile is pure data: the
// same widget code runs on the 128px grayscale panel and the 240px color
// panel, differing only in these numbers.
package geom

import "image"

// CharW and CharH are the fixed font cell dimensions. All chars-per-line
// arithmetic assumes this cell.
const (
	CharW = 8
	CharH = 8
)

// Chrome margins shared by every widget layout. The title row always sits
// at TitleY regardless of resolution; the subtitle hugs the bottom edge.
// Only the band in between stretches with the screen.
const (
	TitleY       = 20
	ContentTop   = 28
	BottomMargin = 20
)

// Profile describes one physical screen. Width and Height are always equal:
// the framebuffer is square and the visible area is the inscribed disc.
type Profile struct {
	Width  int
	Height int
}

// The two screens shipped on the board.
var (
	Profile128 = Profile{Width: 128, Height: 128}
	Profile240 = Profile{Width: 240, Height: 240}
)

// NewProfile builds a square profile of the given side length.
func NewProfile(size int) Profile {
	return Profile{Width: size, Height: size}
}

// Center returns the pixel at the middle of the disc.
func (p Profile) Center() image.Point {
	return image.Point{X: p.Width / 2, Y: p.Height / 2}
}

// Radius of the visible disc.
func (p Profile) Radius() int {
	if p.Height < p.Width {
		return p.Height / 2
	}
	return p.Width / 2
}

// CharsPerLine is how many unscaled font cells fit across the framebuffer.
func (p Profile) CharsPerLine() int {
	return p.Width / CharW
}

// Bounds returns the full framebuffer rectangle.
func (p Profile) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// ContentZone is the elastic band between the title chrome and the subtitle
// chrome. Main-content widgets center themselves inside it.
func (p Profile) ContentZone() image.Rectangle {
	return image.Rect(0, ContentTop, p.Width, p.Height-BottomMargin)
}
