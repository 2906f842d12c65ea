package screen

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QR renders a QR code centered on the disc, sized to the largest square
// that fits inside the visible circle. An empty payload draws nothing. A
// payload whose code cannot fit the square at one pixel per module is
// rejected rather than clipped.
func (s *Screen) QR(payload string) error {
	if payload == "" {
		return nil
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("screen: qr encode: %w", err)
	}

	// Largest inscribed square of the disc has side r*sqrt(2); 7/5 is a
	// safe integer underestimate.
	side := s.profile.Radius() * 7 / 5
	if modules := len(code.Bitmap()); modules > side {
		return fmt.Errorf("%w: qr needs %d modules, disc fits %d", ErrTextTooLong, modules, side)
	}
	s.beginWidget("qr", false)

	img := code.Image(side)
	b := img.Bounds()
	s.backend.Blit(img, s.profile.Center().X-b.Dx()/2, s.profile.Center().Y-b.Dy()/2)
	return nil
}
