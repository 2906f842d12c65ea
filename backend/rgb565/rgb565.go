// Package rgb565 is the in-memory frame for 16-bit color panels. Pixels
// are packed little-endian RGB565, the wire order of the GC9A01 class of
// TFT controllers. Like the grayscale frame it implements image.Image.
package rgb565

import (
	"image"
	"image/color"

	"github.com/halfmoonlabs/discscreen/internal/raster"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Frame is a packed RGB565 buffer, two bytes per pixel.
type Frame struct {
	pix    []byte
	stride int // bytes per row
	w, h   int

	// FlushFunc, when set, receives the packed buffer on Present.
	FlushFunc func(pix []byte) error
}

// New allocates a w x h frame.
func New(w, h int) *Frame {
	if w < 0 || h < 0 {
		panic("rgb565: dimensions must be non-negative")
	}
	stride := w * 2
	return &Frame{pix: make([]byte, stride*h), stride: stride, w: w, h: h}
}

func (f *Frame) Size() (w, h int)        { return f.w, f.h }
func (f *Frame) ColorDepth() pixel.Depth { return pixel.RGB565 }
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

// Pix exposes the packed buffer for transport flushes and tests.
func (f *Frame) Pix() []byte { return f.pix }

// SetPixel writes the packed word. Out-of-bounds writes are dropped.
func (f *Frame) SetPixel(x, y int, c pixel.Native) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	off := y*f.stride + x*2
	f.pix[off] = byte(c)
	f.pix[off+1] = byte(c >> 8)
}

// WordAt returns the packed RGB565 word at (x, y), 0 outside the frame.
func (f *Frame) WordAt(x, y int) uint16 {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.pix[off]) | uint16(f.pix[off+1])<<8
}

// At implements image.Image, expanding channels by bit replication.
func (f *Frame) At(x, y int) color.Color {
	c := pixel.RGB565ToColor(f.WordAt(x, y))
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (f *Frame) DrawLine(x0, y0, x1, y1 int, c pixel.Native) {
	raster.Line(f, x0, y0, x1, y1, c)
}

func (f *Frame) FillRect(x, y, w, h int, c pixel.Native) {
	raster.FillRect(f, x, y, w, h, c)
}

func (f *Frame) DrawRect(x, y, w, h int, c pixel.Native) {
	raster.Rect(f, x, y, w, h, c)
}

func (f *Frame) DrawHLine(x, y, w int, c pixel.Native) {
	raster.HLine(f, x, y, w, c)
}

func (f *Frame) DrawVLine(x, y, h int, c pixel.Native) {
	raster.VLine(f, x, y, h, c)
}

// Blit copies img with its top-left corner at (x, y), packing every pixel
// to RGB565.
func (f *Frame) Blit(img image.Image, x, y int) {
	b := img.Bounds()
	for sy := 0; sy < b.Dy(); sy++ {
		for sx := 0; sx < b.Dx(); sx++ {
			c := pixel.FromColor(img.At(b.Min.X+sx, b.Min.Y+sy))
			f.SetPixel(x+sx, y+sy, pixel.Native(pixel.ToRGB565(c)))
		}
	}
}

// ClearBuffer zeroes the buffer.
func (f *Frame) ClearBuffer() {
	for i := range f.pix {
		f.pix[i] = 0
	}
}

// Present hands the buffer to FlushFunc when one is installed.
func (f *Frame) Present() error {
	if f.FlushFunc == nil {
		return nil
	}
	return f.FlushFunc(f.pix)
}
