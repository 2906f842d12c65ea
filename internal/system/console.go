// Package system switches the Linux console in and out of graphics mode so
// the framebuffer demo is not fought over by the text cursor.
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE
)

var vtPaths = []string{"/dev/tty", "/dev/tty0"}

// SetGraphicsMode puts the active virtual terminal into KD_GRAPHICS,
// suppressing the hardware cursor and console output.
func SetGraphicsMode() error {
	return setMode(kdGraphics)
}

// RestoreTextMode returns the console to KD_TEXT.
func RestoreTextMode() error {
	return setMode(kdText)
}

func setMode(mode int) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor and ShowCursor write the ANSI cursor escapes to the active
// terminal, for setups where KD_GRAPHICS is unavailable.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return lastErr
}
