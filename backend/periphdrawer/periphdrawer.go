// Package periphdrawer adapts a periph.io display to the widget backend
// contract. The periph device tree covers the SSD13xx grayscale OLEDs, so
// this is the path to the round 4-bit panel: draw into the nibble-packed
// frame, then hand it to the device as an image on Present. The device's
// own color model does the final conversion.
package periphdrawer

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"

	"github.com/halfmoonlabs/discscreen/backend/gray4"
)

// Backend buffers draws in a gray4 frame and flushes to the device.
type Backend struct {
	*gray4.Frame
	dev display.Drawer
}

// New sizes the frame from the device bounds.
func New(d display.Drawer) *Backend {
	b := d.Bounds()
	return &Backend{Frame: gray4.New(b.Dx(), b.Dy()), dev: d}
}

// Present draws the frame onto the device in one call.
func (b *Backend) Present() error {
	if err := b.dev.Draw(b.dev.Bounds(), b.Frame, image.Point{}); err != nil {
		return fmt.Errorf("periphdrawer: draw: %w", err)
	}
	return nil
}
