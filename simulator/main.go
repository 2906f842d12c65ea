package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/halfmoonlabs/discscreen/scenes"
	"github.com/halfmoonlabs/discscreen/screen"
)

func main() {
	defaults, err := DefaultSimConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("simulator config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+EnvListenAddr)
	scenario := flag.String("scenario", "temperature", "scenario to show at startup")
	snapshotDir := flag.String("snapshot", "", "render every scenario on both profiles into this directory and exit")
	flag.Parse()

	logger := screen.NewFileLogger(os.Stderr)

	if *snapshotDir != "" {
		if err := WriteSnapshots(*snapshotDir, defaults, logger); err != nil {
			fmt.Println("snapshot error:", err)
			os.Exit(1)
		}
		return
	}

	startup := strings.TrimSpace(*scenario)
	initial, ok := scenes.Lookup(startup)
	if !ok {
		fmt.Println("unknown startup scenario:", startup)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	control := NewSimControl(initial, logger)
	mux := http.NewServeMux()
	control.RegisterEndpoints(mux)

	server := &http.Server{Addr: *listenAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("server error:", err)
			stop()
		}
	}()

	fmt.Println("discscreen simulator listening on", *listenAddr)
	fmt.Println("Scenario:", startup)
	fmt.Println("Frame: http://" + displayAddr(*listenAddr) + "/frame.png?profile=128")

	<-processCtx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func displayAddr(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
