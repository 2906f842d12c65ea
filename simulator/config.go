package main

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "DISCSCREEN_LISTEN"
	EnvScale      = "DISCSCREEN_SNAPSHOT_SCALE"
)

// SimConfig contains settings for running the simulator.
type SimConfig struct {
	ListenAddr string
	// Scale multiplies snapshot output; 0 picks a per-profile default.
	Scale int
}

func DefaultSimConfigFromEnv(defaultListenAddr string) (SimConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	scale := 0
	if raw := os.Getenv(EnvScale); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return SimConfig{}, fmt.Errorf("%s must be a non-negative integer (got %q)", EnvScale, raw)
		}
		scale = parsed
	}

	return SimConfig{ListenAddr: listenAddr, Scale: scale}, nil
}
