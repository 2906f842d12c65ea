package screen

import (
	"image"

	"github.com/halfmoonlabs/discscreen/geom"
)

// Anchor names a placement on the disc. The cardinal anchors hug the edge
// with margins derived from the circle chord, so anchored text always stays
// inside the visible area.
type Anchor uint8

const (
	Center Anchor = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var anchorNames = [...]string{"CENTER", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return "CENTER"
}

// safeMargin returns the minimum distance from the top (or bottom) edge at
// which a text run of width tw pixels fits inside the disc. fromEdge is the
// floor for narrow text.
func safeMargin(p geom.Profile, tw, fromEdge int) int {
	r := p.Radius()
	half := tw / 2
	if half >= r {
		return r // wider than the disc, push to the middle
	}
	// A row at distance d from center spans a chord of 2*sqrt(r^2-d^2).
	// The deepest row wide enough for tw is at d = sqrt(r^2-half^2), which
	// is the same quantity with the roles swapped. 2px padding on top.
	maxDepth := geom.ChordHalfWidth(r, half)
	margin := r - maxDepth + 2
	if margin < fromEdge {
		return fromEdge
	}
	return margin
}

// resolve returns the top-left origin for text of textLen characters at the
// given anchor, with the glyph cell scaled by cell pixels.
func resolve(p geom.Profile, at Anchor, textLen, cell int) image.Point {
	c := p.Center()
	ch := cell
	tw := textLen * cell

	marginNS := safeMargin(p, tw, ch)
	marginEW := ch + 4

	switch at {
	case North:
		return image.Pt(c.X-tw/2, marginNS)
	case NorthEast:
		return image.Pt(p.Width-marginEW-tw, marginNS)
	case East:
		return image.Pt(p.Width-marginEW-tw, c.Y-ch/2)
	case SouthEast:
		return image.Pt(p.Width-marginEW-tw, p.Height-marginNS-ch)
	case South:
		return image.Pt(c.X-tw/2, p.Height-marginNS-ch)
	case SouthWest:
		return image.Pt(marginEW, p.Height-marginNS-ch)
	case West:
		return image.Pt(marginEW, c.Y-ch/2)
	case NorthWest:
		return image.Pt(marginEW, marginNS)
	default:
		return image.Pt(c.X-tw/2, c.Y-ch/2)
	}
}
