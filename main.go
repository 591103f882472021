package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/atomicstack/lapse-browser/internal/app"
	"github.com/atomicstack/lapse-browser/internal/config"
	"github.com/atomicstack/lapse-browser/internal/logging"
	"github.com/atomicstack/lapse-browser/internal/logging/events"
)

func main() {
	os.Exit(run())
}

func run() int {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if info, err := os.Stat(runtimeCfg.App.Dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	} else if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", runtimeCfg.App.Dir)
		return 1
	}

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		events.App.Stop(err.Error())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	events.App.Stop("exit")
	return 0
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if abs, err := filepath.Abs(cfg.App.Dir); err == nil {
		payload["archiveDir"] = abs
	} else {
		payload["archiveDirError"] = err.Error()
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and the
// first size found, which is the size the table is first laid out for.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		f    *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.f.Fd())
		if !term.IsTerminal(fd) {
			results = append(results, entry)
			continue
		}
		entry.IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Width, entry.Height = width, height
			if detected == nil {
				detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
