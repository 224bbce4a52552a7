package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
	"github.com/vovakirdan/cube-chase/internal/game"
)

// newLogger builds the process logger. Terminal play must not log to the
// terminal it draws on, so without --log-file its output is discarded.
func newLogger(driverID string) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	case driverID == "tui":
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cube",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// newController loads the game config and builds a controller from the
// global flags.
func newController(logger *log.Logger) (*game.Controller, config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, err
	}

	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger.Debug("starting game", "seed", rt.Seed, "fps", rt.TickRate)
	return game.NewController(cfg, rt, logger), cfg, nil
}
