// Package scenes bundles one deterministic demo drawing per widget. The
// on-device demo cycles through them and the simulator renders them to
// PNGs, so the same inputs exercise every widget contract on both panels.
package scenes

import (
	"math"

	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/pixel"
	"github.com/halfmoonlabs/discscreen/screen"
)

// Scene is a named, stateless frame: it draws onto a cleared screen and
// leaves presentation to the caller.
type Scene struct {
	Name string
	Draw func(s *screen.Screen) error
}

// All returns the scene catalog in presentation order.
func All() []Scene {
	return []Scene{
		{Name: "temperature", Draw: temperature},
		{Name: "battery", Draw: battery},
		{Name: "comfort", Draw: comfort},
		{Name: "gauge", Draw: gauge},
		{Name: "graph", Draw: graph},
		{Name: "menu", Draw: menu},
		{Name: "compass", Draw: compass},
		{Name: "watch", Draw: watch},
		{Name: "smiley", Draw: smiley},
		{Name: "qr", Draw: qr},
	}
}

func temperature(s *screen.Screen) error {
	if err := s.Title("Temperature", pixel.Gray); err != nil {
		return err
	}
	if err := s.Value(screen.ValueSpec{Value: 21.5, Unit: "C"}, pixel.White); err != nil {
		return err
	}
	return s.Subtitle([]string{"HTS221"}, pixel.Dark)
}

func battery(s *screen.Screen) error {
	if err := s.Title("Battery", pixel.Gray); err != nil {
		return err
	}
	if err := s.Value(screen.ValueSpec{Value: 72, Unit: "%"}, pixel.White); err != nil {
		return err
	}
	if err := s.Bar(72, 100, pixel.Green); err != nil {
		return err
	}
	return s.Subtitle([]string{"charging"}, pixel.Dark)
}

func comfort(s *screen.Screen) error {
	if err := s.Title("Comfort", pixel.Gray); err != nil {
		return err
	}
	p := s.Profile()
	left, _ := geom.SplitVertical(p.ContentZone(), p.Width/2)
	s.Line(left.Max.X, 32, left.Max.X, p.Height-32, pixel.Dark)
	if err := s.Value(screen.ValueSpec{Value: 22.5, Unit: "C", Label: "TEMP", At: screen.West}, pixel.White); err != nil {
		return err
	}
	if err := s.Value(screen.ValueSpec{Value: 45, Unit: "%", Label: "HUM", At: screen.East}, pixel.White); err != nil {
		return err
	}
	return s.Subtitle([]string{"Comfortable", "HTS221"}, pixel.Green)
}

func gauge(s *screen.Screen) error {
	if err := s.Gauge(screen.GaugeSpec{Value: 182, Min: 0, Max: 500, Unit: "mm"}, pixel.Light); err != nil {
		return err
	}
	if err := s.Title("Distance", pixel.Gray); err != nil {
		return err
	}
	return s.Subtitle([]string{"VL53L1X ToF"}, pixel.Dark)
}

func graph(s *screen.Screen) error {
	if err := s.Title("Light", pixel.Gray); err != nil {
		return err
	}
	history := make([]float64, 48)
	for i := range history {
		history[i] = 50 + 40*math.Sin(float64(i)/6)
	}
	if err := s.Graph(history, 0, 100, pixel.Light); err != nil {
		return err
	}
	return s.Subtitle([]string{"lux history"}, pixel.Dark)
}

func menu(s *screen.Screen) error {
	if err := s.Title("Menu", pixel.Gray); err != nil {
		return err
	}
	return s.Menu(screen.MenuSpec{
		Items:    []string{"Temperature", "Humidity", "Distance", "Light", "Compass", "Watch", "Settings", "About"},
		Selected: 2,
	}, pixel.White)
}

func compass(s *screen.Screen) error {
	return s.Compass(225, pixel.Light)
}

func watch(s *screen.Screen) error {
	return s.Watch(10, 8, 37, pixel.Light)
}

func smiley(s *screen.Screen) error {
	if err := s.Title("Mood", pixel.Gray); err != nil {
		return err
	}
	if err := s.Face(screen.Happy, pixel.Green, true); err != nil {
		return err
	}
	return s.Subtitle([]string{"HAPPY", "dist:120mm"}, pixel.Dark)
}

func qr(s *screen.Screen) error {
	if err := s.Title("Connect", pixel.Gray); err != nil {
		return err
	}
	return s.QR("https://example.org/setup")
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, bool) {
	for _, sc := range All() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scene{}, false
}
