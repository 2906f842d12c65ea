// Package fbdev presents an RGB565 frame on a Linux framebuffer device.
// It drives round DSI/SPI panels exposed through /dev/fb0 and is also the
// easiest way to eyeball the widget layer on a desktop.
package fbdev

import (
	"fmt"
	"image/color"

	fb "github.com/gonutz/framebuffer"

	"github.com/halfmoonlabs/discscreen/backend/rgb565"
)

// Backend draws into an in-memory RGB565 frame and copies it to the
// framebuffer on Present.
type Backend struct {
	*rgb565.Frame
	dev *fb.Device
}

// Open maps the framebuffer device and allocates a w x h frame.
func Open(device string, w, h int) (*Backend, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w", device, err)
	}
	return &Backend{Frame: rgb565.New(w, h), dev: dev}, nil
}

// Present copies the frame to the device. When the framebuffer is at least
// as large as the frame the copy is 1:1 and centered; a smaller
// framebuffer gets a nearest-neighbour downscale.
func (b *Backend) Present() error {
	bounds := b.dev.Bounds()
	fw, fh := b.Size()

	if bounds.Dx() >= fw && bounds.Dy() >= fh {
		offX := bounds.Min.X + (bounds.Dx()-fw)/2
		offY := bounds.Min.Y + (bounds.Dy()-fh)/2
		for y := 0; y < fh; y++ {
			for x := 0; x < fw; x++ {
				b.dev.Set(offX+x, offY+y, b.rgba(x, y))
			}
		}
		return nil
	}

	for y := 0; y < bounds.Dy(); y++ {
		sy := y * fh / bounds.Dy()
		for x := 0; x < bounds.Dx(); x++ {
			sx := x * fw / bounds.Dx()
			b.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, b.rgba(sx, sy))
		}
	}
	return nil
}

func (b *Backend) rgba(x, y int) color.RGBA {
	c, _ := b.At(x, y).(color.RGBA)
	return c
}

// Close releases the framebuffer mapping.
func (b *Backend) Close() error {
	b.dev.Close()
	return nil
}
