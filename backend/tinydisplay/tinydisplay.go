// Package tinydisplay adapts a tinygo.org/x/drivers display to the widget
// backend contract. The TinyGo driver ecosystem covers the GC9A01 and its
// relatives, so this is the path from the widget layer to a real SPI color
// panel: draw into the RGB565 frame, then push it pixel by pixel through
// the driver on Present.
package tinydisplay

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/halfmoonlabs/discscreen/backend/rgb565"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// Backend buffers draws in an RGB565 frame and flushes to the driver.
type Backend struct {
	*rgb565.Frame
	disp drivers.Displayer
}

// New sizes the frame from the driver.
func New(d drivers.Displayer) *Backend {
	w, h := d.Size()
	return &Backend{Frame: rgb565.New(int(w), int(h)), disp: d}
}

// Present writes every pixel to the driver and asks it to display the
// frame. Drivers batch the SPI traffic behind Display.
func (b *Backend) Present() error {
	w, h := b.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := pixel.RGB565ToColor(b.WordAt(x, y))
			b.disp.SetPixel(int16(x), int16(y), color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	if err := b.disp.Display(); err != nil {
		return fmt.Errorf("tinydisplay: display: %w", err)
	}
	return nil
}
