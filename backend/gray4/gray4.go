// Package gray4 is the in-memory frame for 4-bit grayscale panels. Pixels
// are nibble-packed two per byte, high nibble left, matching the SSD1327
// class of OLED controllers. The frame doubles as an image.Image so it can
// be encoded to PNG or handed to device drivers that consume images.
package gray4

import (
	"image"
	"image/color"

	"github.com/halfmoonlabs/discscreen/internal/raster"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Frame is a nibble-packed 4-bit grayscale buffer.
type Frame struct {
	pix    []byte
	stride int // bytes per row
	w, h   int

	// FlushFunc, when set, receives the packed buffer on Present. Device
	// wrappers use it to push the frame over their transport; the
	// simulator leaves it nil.
	FlushFunc func(pix []byte) error
}

// New allocates a w x h frame. The width must be even: two pixels share a
// byte.
func New(w, h int) *Frame {
	if w < 0 || h < 0 || w%2 != 0 {
		panic("gray4: width must be even and dimensions non-negative")
	}
	stride := w / 2
	return &Frame{pix: make([]byte, stride*h), stride: stride, w: w, h: h}
}

func (f *Frame) Size() (w, h int)        { return f.w, f.h }
func (f *Frame) ColorDepth() pixel.Depth { return pixel.Gray4 }
func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }
func (f *Frame) ColorModel() color.Model { return color.GrayModel }

// Pix exposes the packed buffer for transport flushes and tests.
func (f *Frame) Pix() []byte { return f.pix }

// SetPixel writes the low 4 bits of c. Out-of-bounds writes are dropped.
func (f *Frame) SetPixel(x, y int, c pixel.Native) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	off := y*f.stride + x/2
	v := byte(c) & 0x0F
	if x%2 == 0 {
		f.pix[off] = f.pix[off]&0x0F | v<<4
	} else {
		f.pix[off] = f.pix[off]&0xF0 | v
	}
}

// Gray4At returns the 4-bit value at (x, y), 0 outside the frame.
func (f *Frame) Gray4At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return 0
	}
	b := f.pix[y*f.stride+x/2]
	if x%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// At implements image.Image, expanding the index to 8-bit gray.
func (f *Frame) At(x, y int) color.Color {
	return color.Gray{Y: f.Gray4At(x, y) * 17}
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

// Blit copies img with its top-left corner at (x, y), converting every
// pixel through the grayscale color model.
func (f *Frame) Blit(img image.Image, x, y int) {
	b := img.Bounds()
	for sy := 0; sy < b.Dy(); sy++ {
		for sx := 0; sx < b.Dx(); sx++ {
			c := pixel.FromColor(img.At(b.Min.X+sx, b.Min.Y+sy))
			f.SetPixel(x+sx, y+sy, pixel.Native(pixel.ToGray4(c)))
		}
	}
}

// ClearBuffer zeroes every nibble.
func (f *Frame) ClearBuffer() {
	for i := range f.pix {
		f.pix[i] = 0
	}
}

// Present hands the buffer to FlushFunc when one is installed. Without a
// flush target the frame is its own presentation surface.
func (f *Frame) Present() error {
	if f.FlushFunc == nil {
		return nil
	}
	return f.FlushFunc(f.pix)
}
