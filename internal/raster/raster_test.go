package raster

import (
	"testing"

	"github.com/halfmoonlabs/discscreen/pixel"
)

type grid struct {
	w, h int
	set  map[[2]int]bool
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, set: make(map[[2]int]bool)}
}

func (g *grid) Size() (w, h int) { return g.w, g.h }
func (g *grid) SetPixel(x, y int, c pixel.Native) {
	g.set[[2]int{x, y}] = true
}

func TestLineEndpointsInclusive(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"horizontal", 1, 2, 6, 2},
		{"vertical", 3, 0, 3, 5},
		{"diagonal", 0, 0, 4, 4},
		{"steep", 2, 0, 3, 7},
		{"reversed", 6, 5, 1, 1},
		{"single point", 4, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(10, 10)
			Line(g, tt.x0, tt.y0, tt.x1, tt.y1, 1)
			if !g.set[[2]int{tt.x0, tt.y0}] {
				t.Errorf("start (%d,%d) not set", tt.x0, tt.y0)
			}
			if !g.set[[2]int{tt.x1, tt.y1}] {
				t.Errorf("end (%d,%d) not set", tt.x1, tt.y1)
			}
		})
	}
}

func TestFillRectCoversArea(t *testing.T) {
	g := newGrid(10, 10)
	FillRect(g, 2, 3, 4, 2, 1)
	if len(g.set) != 8 {
		t.Errorf("FillRect lit %d pixels, want 8", len(g.set))
	}
	for x := 2; x < 6; x++ {
		for y := 3; y < 5; y++ {
			if !g.set[[2]int{x, y}] {
				t.Errorf("pixel (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestRectOutlineOnly(t *testing.T) {
	g := newGrid(10, 10)
	Rect(g, 1, 1, 4, 4, 1)
	if len(g.set) != 12 {
		t.Errorf("Rect lit %d pixels, want 12", len(g.set))
	}
	if g.set[[2]int{2, 2}] {
		t.Error("interior pixel lit")
	}

	g = newGrid(10, 10)
	Rect(g, 0, 0, 0, 5, 1)
	if len(g.set) != 0 {
		t.Error("degenerate rect drew pixels")
	}
}

func TestHVLineLengths(t *testing.T) {
	g := newGrid(10, 10)
	HLine(g, 2, 5, 3, 1)
	VLine(g, 7, 1, 4, 1)
	if len(g.set) != 7 {
		t.Errorf("lit %d pixels, want 7", len(g.set))
	}
}
