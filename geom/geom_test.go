package geom

import (
	"image"
	"testing"
)

func TestProfileDerivedValues(t *testing.T) {
	tests := []struct {
		name        string
		p           Profile
		wantCenter  image.Point
		wantRadius  int
		wantChars   int
		wantContent image.Rectangle
	}{
		{"128", Profile128, image.Point{64, 64}, 64, 16, image.Rect(0, 28, 128, 108)},
		{"240", Profile240, image.Point{120, 120}, 120, 30, image.Rect(0, 28, 240, 220)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Center(); got != tt.wantCenter {
				t.Errorf("Center() = %v, want %v", got, tt.wantCenter)
			}
			if got := tt.p.Radius(); got != tt.wantRadius {
				t.Errorf("Radius() = %d, want %d", got, tt.wantRadius)
			}
			if got := tt.p.CharsPerLine(); got != tt.wantChars {
				t.Errorf("CharsPerLine() = %d, want %d", got, tt.wantChars)
			}
			if got := tt.p.ContentZone(); got != tt.wantContent {
				t.Errorf("ContentZone() = %v, want %v", got, tt.wantContent)
			}
		})
	}
}

func TestNewProfileIsSquare(t *testing.T) {
	p := NewProfile(96)
	if p.Width != 96 || p.Height != 96 {
		t.Errorf("NewProfile(96) = %+v", p)
	}
	if p.Bounds() != image.Rect(0, 0, 96, 96) {
		t.Errorf("Bounds() = %v", p.Bounds())
	}
}

func TestChordHalfWidth(t *testing.T) {
	tests := []struct {
		name string
		r, d int
		want int
	}{
		{"center row is full radius", 64, 0, 64},
		{"3-4-5 triangle", 5, 3, 4},
		{"64 at 44", 64, 44, 46}, // floor(sqrt(4096-1936)) = floor(46.47)
		{"negative distance mirrors", 5, -3, 4},
		{"on the rim", 64, 64, 0},
		{"outside the disc", 64, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChordHalfWidth(tt.r, tt.d); got != tt.want {
				t.Errorf("ChordHalfWidth(%d, %d) = %d, want %d", tt.r, tt.d, got, tt.want)
			}
		})
	}
}

func TestCenterRect(t *testing.T) {
	got := CenterRect(image.Rect(0, 0, 100, 100), 20, 10)
	want := image.Rect(40, 45, 60, 55)
	if got != want {
		t.Errorf("CenterRect = %v, want %v", got, want)
	}
}

func TestInsetClampsInverted(t *testing.T) {
	got := Inset(image.Rect(0, 0, 10, 10), 8)
	if got.Dx() < 0 || got.Dy() < 0 {
		t.Errorf("Inset produced negative size: %v", got)
	}
}

func TestSplitHorizontal(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 10, 10), 3)
	if top != image.Rect(0, 0, 10, 3) || bottom != image.Rect(0, 3, 10, 10) {
		t.Errorf("SplitHorizontal = %v, %v", top, bottom)
	}

	top, bottom = SplitHorizontal(image.Rect(0, 0, 10, 10), 99)
	if top.Dy() != 10 || bottom.Dy() != 0 {
		t.Errorf("clamped SplitHorizontal = %v, %v", top, bottom)
	}
}

func TestSplitVertical(t *testing.T) {
	left, right := SplitVertical(image.Rect(0, 0, 10, 10), 4)
	if left != image.Rect(0, 0, 4, 10) || right != image.Rect(4, 0, 10, 10) {
		t.Errorf("SplitVertical = %v, %v", left, right)
	}
}
