// Package screen is the widget layer for round pixel displays. A Screen
// binds one Backend to the geometry profile derived from its size and
// exposes the widget catalog plus cardinal text and raw shape helpers.
//
// Frame convention: Clear once at the start of a logical frame, draw any
// number of widgets, Present once at the end. The engine never clears on
// its own; omitting Clear accumulates previous frames on purpose.
package screen

import (
	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/pixel"
)

// frame controller phases: Idle -> Cleared -> Drawing -> Idle.
type phase uint8

const (
	phaseIdle phase = iota
	phaseCleared
	phaseDrawing
)

// Screen owns a Backend and its frame buffer for the lifetime of the
// controller. Widgets are stateless: every call receives its full input and
// retains nothing. Not safe for concurrent use; one Screen belongs to one
// goroutine at a time.
type Screen struct {
	backend Backend
	profile geom.Profile

	// Logger receives layout warnings. Defaults to NoopLogger.
	Logger Logger

	phase        phase
	contentDrawn bool
}

// New builds a Screen over b. The geometry profile is derived from the
// backend size, so the two can never disagree.
func New(b Backend) *Screen {
	w, h := b.Size()
	return &Screen{
		backend: b,
		profile: geom.Profile{Width: w, Height: h},
		Logger:  NoopLogger{},
	}
}

// Profile returns the geometry constants this screen lays widgets out with.
func (s *Screen) Profile() geom.Profile { return s.profile }

// Backend returns the bound drawing surface.
func (s *Screen) Backend() Backend { return s.backend }

// Clear zeroes the frame buffer and starts a new logical frame.
func (s *Screen) Clear() {
	s.backend.ClearBuffer()
	s.phase = phaseCleared
	s.contentDrawn = false
}

// Present flushes the buffer to the device and returns the controller to
// idle. Presenting twice without an intervening Clear re-sends the same
// buffer; that is allowed and produces identical output both times.
func (s *Screen) Present() error {
	err := s.backend.Present()
	s.phase = phaseIdle
	return err
}

// beginWidget records the controller transition for one widget call and
// emits composition warnings. Called after input validation so a rejected
// call leaves the controller state untouched.
func (s *Screen) beginWidget(name string, immersive bool) {
	if s.phase == phaseIdle {
		s.Logger.Errorf("screen", "%s drawn without a preceding clear; previous frame contents remain", name)
	}
	if immersive && s.contentDrawn {
		s.Logger.Errorf("screen", "immersive widget %s drawn over content widgets; overlap is expected", name)
	}
	if !immersive {
		s.contentDrawn = true
	}
	s.phase = phaseDrawing
}

// native converts an abstract color to the backend encoding. The single
// place the widget layer consults a backend capability.
func (s *Screen) native(c pixel.Color) pixel.Native {
	return pixel.ToNative(c, s.backend.ColorDepth())
}
