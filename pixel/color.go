// Package pixel is the color model shared by all backends. An abstract RGB
// color is converted once, at draw time, into the Native encoding of the
// target panel: a 4-bit grayscale index for the OLED or a packed RGB565
// word for the TFT. Widgets never see the native form.
package pixel

import (
	"fmt"
	"image/color"
)

// Depth identifies the pixel encoding a backend stores.
type Depth uint8

const (
	// Gray4 is a 4-bit grayscale index, 0 (black) to 15 (white).
	Gray4 Depth = iota
	// RGB565 is a 16-bit packed color word, 5/6/5 bits per channel.
	RGB565
)

func (d Depth) String() string {
	switch d {
	case Gray4:
		return "gray4"
	case RGB565:
		return "rgb565"
	}
	return fmt.Sprintf("depth(%d)", uint8(d))
}

// Native is a backend-encoded color value. For Gray4 backends only the low
// 4 bits are meaningful; for RGB565 all 16 bits are.
type Native uint16

// Color is an abstract RGB color, 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// ErrInvalidColor reports a channel outside 0-255. Channels are rejected
// rather than clamped so caller bugs are not masked.
var ErrInvalidColor = fmt.Errorf("pixel: invalid color")

// Grayscale ramp. The gray4 conversions of these are pinned: BLACK=0,
// DARK=6, GRAY=9, LIGHT=11, WHITE=15.
var (
	Black = Color{0, 0, 0}
	Dark  = Color{102, 102, 102}
	Gray  = Color{153, 153, 153}
	Light = Color{187, 187, 187}
	White = Color{255, 255, 255}
)

// Accent colors. On grayscale backends these degrade to their channel mean.
var (
	Green  = Color{0, 255, 0}
	Red    = Color{255, 0, 0}
	Yellow = Color{255, 255, 0}
	Blue   = Color{0, 0, 255}
)

// New validates channel ranges and builds a Color.
func New(r, g, b int) (Color, error) {
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("%w: (%d,%d,%d)", ErrInvalidColor, r, g, b)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ToNative converts c to the encoding of the given depth.
func ToNative(c Color, d Depth) Native {
	if d == Gray4 {
		return Native(ToGray4(c))
	}
	return Native(ToRGB565(c))
}

// ToGray4 converts c to a 4-bit grayscale index. The gray level is the
// rounded channel mean, then scaled to 0-15 with rounding. Integer math
// keeps the result identical on every platform.
func ToGray4(c Color) uint8 {
	sum := int(c.R) + int(c.G) + int(c.B)
	gray := (2*sum + 3) / 6 // round(sum/3)
	return uint8((gray*30 + 255) / 510) // round(gray*15/255)
}

// ToRGB565 packs c into a 16-bit 5/6/5 word. Plain truncation, no dithering.
func ToRGB565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Gray4ToColor expands a 4-bit index back to an RGB gray, for backends that
// need to hand pixels to color.Color consumers.
func Gray4ToColor(v uint8) Color {
	g := (v & 0x0F) * 17
	return Color{R: g, G: g, B: g}
}

// RGB565ToColor expands a packed word back to 8-bit channels by bit
// replication.
func RGB565ToColor(w uint16) Color {
	r := uint8(w>>11) & 0x1F
	g := uint8(w>>5) & 0x3F
	b := uint8(w) & 0x1F
	return Color{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
	}
}

// RGBA implements color.Color so a pixel.Color can be used anywhere the
// standard image packages expect one.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xFFFF
}

// FromColor converts any color.Color to a pixel.Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
