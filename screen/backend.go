package screen

import (
	"image"

	"github.com/halfmoonlabs/discscreen/pixel"
)

// Backend is the capability set a physical or simulated panel must provide.
// The widget layer never branches on which panel it is driving; the only
// declared capability it consults is ColorDepth, and only through the color
// model. Implementations clip out-of-bounds coordinates.
type Backend interface {
	// Size returns the framebuffer dimensions in pixels.
	Size() (w, h int)

	// ColorDepth reports the native pixel encoding.
	ColorDepth() pixel.Depth

	SetPixel(x, y int, c pixel.Native)
	DrawLine(x0, y0, x1, y1 int, c pixel.Native)
	FillRect(x, y, w, h int, c pixel.Native)
	DrawRect(x, y, w, h int, c pixel.Native)
	DrawHLine(x, y, w int, c pixel.Native)
	DrawVLine(x, y, h int, c pixel.Native)

	// Blit copies an image onto the buffer with the top-left corner at
	// (x, y), converting through the backend's color model.
	Blit(img image.Image, x, y int)

	// ClearBuffer zeroes the frame buffer. The engine never clears
	// implicitly; skipping it accumulates previous frames.
	ClearBuffer()

	// Present flushes the buffer to the device. May block on transport.
	Present() error
}
