package scenes

import (
	"testing"

	"github.com/halfmoonlabs/discscreen/backend/gray4"
	"github.com/halfmoonlabs/discscreen/backend/rgb565"
	"github.com/halfmoonlabs/discscreen/screen"
)

func TestAllScenesDrawOnBothPanels(t *testing.T) {
	for _, scene := range All() {
		t.Run(scene.Name+"/128", func(t *testing.T) {
			s := screen.New(gray4.New(128, 128))
			s.Clear()
			if err := scene.Draw(s); err != nil {
				t.Errorf("draw: %v", err)
			}
			if err := s.Present(); err != nil {
				t.Errorf("present: %v", err)
			}
		})
		t.Run(scene.Name+"/240", func(t *testing.T) {
			s := screen.New(rgb565.New(240, 240))
			s.Clear()
			if err := scene.Draw(s); err != nil {
				t.Errorf("draw: %v", err)
			}
			if err := s.Present(); err != nil {
				t.Errorf("present: %v", err)
			}
		})
	}
}

func TestSceneNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, scene := range All() {
		if scene.Name == "" {
			t.Error("scene with empty name")
		}
		if seen[scene.Name] {
			t.Errorf("duplicate scene name %q", scene.Name)
		}
		seen[scene.Name] = true
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("watch"); !ok {
		t.Error("Lookup(watch) not found")
	}
	if _, ok := Lookup("no-such-scene"); ok {
		t.Error("Lookup(no-such-scene) found something")
	}
}
