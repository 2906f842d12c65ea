//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStdio points stdout and stderr at path so panic traces survive a
// console left in graphics mode. Dup2 rebinds the descriptors themselves,
// which also catches prints from other goroutines and the runtime.
func redirectStdio(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return err
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
