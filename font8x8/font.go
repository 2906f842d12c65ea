// Package font8x8 rasterizes a fixed 8x8 ASCII bitmap font onto any pixel
// surface. The glyph cell can be remapped to other sizes through
// nearest-neighbour sampling, which is how the small (~85%) and medium
// (~130%) variants and the integer 2x/3x scales all share one code path.
package font8x8

import (
	"errors"
	"fmt"

	"github.com/halfmoonlabs/discscreen/pixel"
)

// Master cell dimensions.
const (
	CharW = 8
	CharH = 8
)

// Supported glyph cells, in pixels. Small keeps 7/8 of the pitch, medium
// 10/8; the scaled variants are exact multiples.
const (
	CellSmall  = 7
	CellBase   = 8
	CellMedium = 10
)

const (
	glyphMin   = 0x20
	glyphMax   = 0x7E
	glyphCount = glyphMax - glyphMin + 1
)

var (
	// ErrUnsupportedGlyph reports a rune outside printable 7-bit ASCII.
	ErrUnsupportedGlyph = errors.New("font8x8: unsupported glyph")
	// ErrInvalidScale reports a scale factor the bitmap font cannot honor.
	ErrInvalidScale = errors.New("font8x8: invalid scale")
)

// Surface is the minimal pixel sink the rasterizer draws into.
type Surface interface {
	SetPixel(x, y int, c pixel.Native)
}

// TextWidth is the pixel advance of text at the given cell size.
func TextWidth(text string, cell int) int {
	return len(text) * cell
}

// Draw renders text with the native 8px cell, top-left anchored at (x, y).
func Draw(dst Surface, text string, x, y int, c pixel.Native) error {
	return drawCells(dst, text, x, y, c, CellBase)
}

// DrawSmall renders text with the reduced 7px cell.
func DrawSmall(dst Surface, text string, x, y int, c pixel.Native) error {
	return drawCells(dst, text, x, y, c, CellSmall)
}

// DrawMedium renders text with the enlarged 10px cell.
func DrawMedium(dst Surface, text string, x, y int, c pixel.Native) error {
	return drawCells(dst, text, x, y, c, CellMedium)
}

// DrawScaled renders text at an integer multiple of the base cell. Only 2x
// and 3x exist; the bitmap font has no intermediate sizes.
func DrawScaled(dst Surface, text string, x, y int, c pixel.Native, scale int) error {
	if scale != 2 && scale != 3 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	return drawCells(dst, text, x, y, c, CellBase*scale)
}

func drawCells(dst Surface, text string, x, y int, c pixel.Native, cell int) error {
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < glyphMin || ch > glyphMax {
			return fmt.Errorf("%w: %q", ErrUnsupportedGlyph, rune(ch))
		}
		drawGlyph(dst, ch, x+i*cell, y, c, cell)
	}
	return nil
}

// drawGlyph maps the 8x8 master glyph onto a cell x cell box. For cell == 8
// the mapping is the identity; smaller cells drop rows/columns, larger ones
// repeat them.
func drawGlyph(dst Surface, ch byte, x, y int, c pixel.Native, cell int) {
	g := &glyphs[ch-glyphMin]
	for row := 0; row < cell; row++ {
		src := g[row*CharH/cell]
		if src == 0 {
			continue
		}
		for col := 0; col < cell; col++ {
			if src&(1<<(col*CharW/cell)) != 0 {
				dst.SetPixel(x+col, y+row, c)
			}
		}
	}
}
