package gray4

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/halfmoonlabs/discscreen/pixel"
	"github.com/halfmoonlabs/discscreen/screen"
)

var _ screen.Backend = (*Frame)(nil)
var _ image.Image = (*Frame)(nil)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantPanic bool
	}{
		{"128x128", 128, 128, false},
		{"empty", 0, 0, false},
		{"odd width", 5, 4, true},
		{"negative height", 4, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()
			f := New(tt.w, tt.h)
			if w, h := f.Size(); w != tt.w || h != tt.h {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.w, tt.h)
			}
			if len(f.Pix()) != tt.w/2*tt.h {
				t.Errorf("len(Pix) = %d, want %d", len(f.Pix()), tt.w/2*tt.h)
			}
		})
	}
}

func TestNibblePacking(t *testing.T) {
	f := New(4, 1)
	f.SetPixel(0, 0, 5)
	f.SetPixel(1, 0, 10)
	f.SetPixel(2, 0, 3)
	f.SetPixel(3, 0, 12)

	// High nibble holds the even (left) pixel.
	if f.Pix()[0] != 0x5A {
		t.Errorf("Pix[0] = 0x%02X, want 0x5A", f.Pix()[0])
	}
	if f.Pix()[1] != 0x3C {
		t.Errorf("Pix[1] = 0x%02X, want 0x3C", f.Pix()[1])
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	f := New(16, 2)
	for v := 0; v < 16; v++ {
		f.SetPixel(v, 0, pixel.Native(v))
		f.SetPixel(v, 1, pixel.Native(15-v))
	}
	for v := 0; v < 16; v++ {
		if got := f.Gray4At(v, 0); got != uint8(v) {
			t.Errorf("Gray4At(%d, 0) = %d, want %d", v, got, v)
		}
		if got := f.Gray4At(v, 1); got != uint8(15-v) {
			t.Errorf("Gray4At(%d, 1) = %d, want %d", v, got, 15-v)
		}
	}
}

func TestSetPixelMasksHighBits(t *testing.T) {
	f := New(2, 1)
	f.SetPixel(0, 0, 0xF5)
	if got := f.Gray4At(0, 0); got != 0x5 {
		t.Errorf("Gray4At(0, 0) = 0x%X, want 0x5", got)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	f := New(4, 4)
	f.SetPixel(-1, 0, 15)
	f.SetPixel(0, -1, 15)
	f.SetPixel(4, 0, 15)
	f.SetPixel(0, 4, 15)

	for _, b := range f.Pix() {
		if b != 0 {
			t.Fatal("out-of-bounds writes reached the buffer")
		}
	}
	if got := f.Gray4At(99, 99); got != 0 {
		t.Errorf("Gray4At(99, 99) = %d, want 0", got)
	}
}

func TestImageInterface(t *testing.T) {
	f := New(4, 4)
	f.SetPixel(1, 2, 15)

	if f.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v", f.Bounds())
	}
	if f.ColorModel() != color.GrayModel {
		t.Error("ColorModel() is not GrayModel")
	}
	if got := f.At(1, 2); got != (color.Gray{Y: 255}) {
		t.Errorf("At(1, 2) = %v, want full white", got)
	}
	if got := f.At(0, 0); got != (color.Gray{Y: 0}) {
		t.Errorf("At(0, 0) = %v, want black", got)
	}
}

func TestBlitConvertsThroughGray(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{102, 102, 102, 255})

	f := New(4, 2)
	f.Blit(src, 1, 1)

	if got := f.Gray4At(1, 1); got != 15 {
		t.Errorf("white blit = %d, want 15", got)
	}
	if got := f.Gray4At(2, 1); got != 6 {
		t.Errorf("dark blit = %d, want 6", got)
	}
}

func TestClearBuffer(t *testing.T) {
	f := New(8, 8)
	f.FillRect(0, 0, 8, 8, 15)
	f.ClearBuffer()
	for _, b := range f.Pix() {
		if b != 0 {
			t.Fatal("ClearBuffer left nonzero bytes")
		}
	}
}

func TestPresentFlush(t *testing.T) {
	f := New(4, 2)
	if err := f.Present(); err != nil {
		t.Errorf("Present without FlushFunc: %v", err)
	}

	var flushed []byte
	f.FlushFunc = func(pix []byte) error {
		flushed = append([]byte(nil), pix...)
		return nil
	}
	f.SetPixel(0, 0, 9)
	if err := f.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if len(flushed) != 4 || flushed[0] != 0x90 {
		t.Errorf("flushed = %v, want packed buffer starting 0x90", flushed)
	}

	wantErr := errors.New("spi gone")
	f.FlushFunc = func([]byte) error { return wantErr }
	if err := f.Present(); !errors.Is(err, wantErr) {
		t.Errorf("Present err = %v, want flush error", err)
	}
}

func TestColorDepth(t *testing.T) {
	if New(2, 2).ColorDepth() != pixel.Gray4 {
		t.Error("ColorDepth() != Gray4")
	}
}
