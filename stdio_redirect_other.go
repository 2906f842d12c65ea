//go:build !unix

package main

import "os"

// redirectStdio swaps the os-level writers on platforms without Dup2. This
// misses runtime-generated stderr output such as panic traces, but keeps
// the build portable.
func redirectStdio(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
