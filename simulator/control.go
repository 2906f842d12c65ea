package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"sync/atomic"

	"github.com/halfmoonlabs/discscreen/backend/gray4"
	"github.com/halfmoonlabs/discscreen/backend/rgb565"
	"github.com/halfmoonlabs/discscreen/scenes"
	"github.com/halfmoonlabs/discscreen/screen"
)

// SimControl holds the currently selected scenario and renders frames
// for it on demand.
type SimControl struct {
	current atomic.Value // scenes.Scene
	logger  screen.Logger
}

func NewSimControl(initial scenes.Scene, logger screen.Logger) *SimControl {
	sc := &SimControl{logger: logger}
	sc.current.Store(initial)
	return sc
}

func (sc *SimControl) Current() scenes.Scene {
	return sc.current.Load().(scenes.Scene)
}

func (sc *SimControl) Select(name string) error {
	scene, ok := scenes.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q", name)
	}
	sc.current.Store(scene)
	sc.logger.Infof("simulator", "scenario set to %s", name)
	return nil
}

// RenderFrame draws the given scene on an in-memory backend matching
// the profile size and returns the finished frame.
func RenderFrame(scene scenes.Scene, size int, logger screen.Logger) (image.Image, error) {
	var (
		backend screen.Backend
		frame   image.Image
	)
	switch size {
	case 128:
		f := gray4.New(size, size)
		backend, frame = f, f
	case 240:
		f := rgb565.New(size, size)
		backend, frame = f, f
	default:
		return nil, fmt.Errorf("unsupported profile size %d", size)
	}

	scr := screen.New(backend)
	scr.Logger = logger

	scr.Clear()
	if err := scene.Draw(scr); err != nil {
		return nil, fmt.Errorf("draw scenario %s: %w", scene.Name, err)
	}
	if err := scr.Present(); err != nil {
		return nil, err
	}
	return frame, nil
}

func (sc *SimControl) RegisterEndpoints(mux *http.ServeMux) {
	mux.HandleFunc("GET /scenarios", func(w http.ResponseWriter, r *http.Request) {
		all := scenes.All()
		names := make([]string, 0, len(all))
		for _, s := range all {
			names = append(names, s.Name)
		}
		writeSimJSON(w, map[string]any{
			"scenarios": names,
			"current":   sc.Current().Name,
		})
	})

	mux.HandleFunc("POST /scenario", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeSimError(w, http.StatusBadRequest, "missing name parameter")
			return
		}
		if err := sc.Select(name); err != nil {
			writeSimError(w, http.StatusNotFound, err.Error())
			return
		}
		writeSimJSON(w, map[string]any{"current": name})
	})

	mux.HandleFunc("GET /frame.png", func(w http.ResponseWriter, r *http.Request) {
		size := 128
		if raw := r.URL.Query().Get("profile"); raw != "" {
			switch raw {
			case "128":
				size = 128
			case "240":
				size = 240
			default:
				writeSimError(w, http.StatusBadRequest, "profile must be 128 or 240")
				return
			}
		}
		frame, err := RenderFrame(sc.Current(), size, sc.logger)
		if err != nil {
			sc.logger.Errorf("simulator", "render failed: %v", err)
			writeSimError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, frame); err != nil {
			sc.logger.Errorf("simulator", "encode frame: %v", err)
		}
	})
}

func writeSimJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeSimError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
