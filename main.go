// The discscreen demo drives the widget catalog on a framebuffer-exposed
// round panel, cycling one scene per interval. It is the on-device
// counterpart of the simulator.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halfmoonlabs/discscreen/backend/fbdev"
	"github.com/halfmoonlabs/discscreen/internal/system"
	"github.com/halfmoonlabs/discscreen/scenes"
	"github.com/halfmoonlabs/discscreen/screen"
)

func main() {
	device := flag.String("fb", "/dev/fb0", "framebuffer device to present on")
	size := flag.Int("size", 240, "panel resolution (128 or 240)")
	interval := flag.Duration("interval", 3*time.Second, "time per scene")
	debug := flag.Bool("debug", false, "enable debug logging to ./discscreen-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via DISCSCREEN_STDIO_LOG")
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("DISCSCREEN_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdio(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger screen.Logger = screen.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./discscreen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Println("debug log open error:", err)
		} else {
			defer f.Close()
			logger = screen.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		}
	}

	b, err := fbdev.Open(*device, *size, *size)
	if err != nil {
		fmt.Println("framebuffer open error:", err)
		os.Exit(1)
	}
	defer b.Close()

	// Keep the console cursor off the panel while we own it.
	if err := system.SetGraphicsMode(); err != nil {
		logger.Errorf("tty", "graphics mode: %v", err)
		_ = system.HideCursor()
	}
	defer func() {
		_ = system.ShowCursor()
		_ = system.RestoreTextMode()
	}()

	s := screen.New(b)
	s.Logger = logger

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	catalog := scenes.All()
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		sc := catalog[i%len(catalog)]
		s.Clear()
		if err := sc.Draw(s); err != nil {
			logger.Errorf("demo", "scene %s: %v", sc.Name, err)
		}
		if err := s.Present(); err != nil {
			logger.Errorf("demo", "present: %v", err)
		}

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
