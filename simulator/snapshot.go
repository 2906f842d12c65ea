package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/halfmoonlabs/discscreen/geom"
	"github.com/halfmoonlabs/discscreen/scenes"
	"github.com/halfmoonlabs/discscreen/screen"
)

const (
	snapshotMargin  = 16
	snapshotCaption = 28
)

// Common system locations for a mono TTF to caption snapshots with.
// Missing fonts degrade to basicfont, never to an error.
var captionFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/Library/Fonts/Menlo.ttc",
}

func loadCaptionFace(logger screen.Logger) font.Face {
	for _, path := range captionFontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fnt, err := truetype.Parse(data)
		if err != nil {
			logger.Errorf("simulator", "parse caption font %s: %v", path, err)
			continue
		}
		return truetype.NewFace(fnt, &truetype.Options{Size: 15})
	}
	logger.Infof("simulator", "no system mono font found, captions use basicfont")
	return basicfont.Face7x13
}

// composeSnapshot upscales a rendered frame, masks it to the round panel
// shape, draws a bezel ring and writes the scenario caption underneath.
func composeSnapshot(frame image.Image, scale int, caption string, face font.Face) image.Image {
	fw := frame.Bounds().Dx()
	fh := frame.Bounds().Dy()

	scaled := image.NewRGBA(image.Rect(0, 0, fw*scale, fh*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	outW := fw*scale + 2*snapshotMargin
	outH := fh*scale + 2*snapshotMargin + snapshotCaption
	panel, strip := geom.SplitHorizontal(image.Rect(0, 0, outW, outH), fh*scale+2*snapshotMargin)
	cx := float64(panel.Dx()) / 2
	cy := float64(panel.Min.Y + panel.Dy()/2)
	radius := float64(fw*scale) / 2

	dc := gg.NewContext(outW, outH)
	dc.SetRGB(0.08, 0.08, 0.10)
	dc.Clear()

	dc.DrawCircle(cx, cy, radius)
	dc.Clip()
	dc.DrawImage(scaled, snapshotMargin, snapshotMargin)
	dc.ResetClip()

	dc.SetRGB(0.35, 0.35, 0.38)
	dc.SetLineWidth(3)
	dc.DrawCircle(cx, cy, radius+1.5)
	dc.Stroke()

	dc.SetFontFace(face)
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.DrawStringAnchored(caption, cx, float64(strip.Min.Y)+float64(strip.Dy())/2, 0.5, 0.35)

	return dc.Image()
}

// WriteSnapshots renders every scenario on both panel profiles and writes
// the composed PNGs into dir.
func WriteSnapshots(dir string, cfg SimConfig, logger screen.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	face := loadCaptionFace(logger)

	for _, scene := range scenes.All() {
		for _, size := range []int{128, 240} {
			scale := cfg.Scale
			if scale == 0 {
				// Equalize output size: 128 gets x3, 240 gets x2.
				scale = 2
				if size == 128 {
					scale = 3
				}
			}

			frame, err := RenderFrame(scene, size, logger)
			if err != nil {
				return err
			}
			caption := fmt.Sprintf("%s @ %dx%d", scene.Name, size, size)
			out := composeSnapshot(frame, scale, caption, face)

			name := filepath.Join(dir, fmt.Sprintf("%s_%d.png", scene.Name, size))
			if err := gg.SavePNG(name, out); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			logger.Infof("simulator", "wrote %s", name)
		}
	}
	return nil
}
