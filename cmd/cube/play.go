package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cube-chase/internal/registry"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Cube Chase.

Controls:
  Arrows/WASD  - Fire boosters
  R            - Restart
  Esc          - Quit
  Q/Ctrl+C     - Quit (terminal)

Terminals do not report key releases, so in the terminal a booster stays
on while the key repeats and switches off shortly after it stops.

Examples:
  cube play
  cube play --driver window
  cube play --seed 42 --log-file cube.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "tui", "Display driver (see 'cube list')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagDriver) {
		fmt.Fprintln(os.Stderr, "Run 'cube list' to see available drivers.")
		return fmt.Errorf("unknown driver %q", flagDriver)
	}

	driver, err := registry.Create(flagDriver)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagDriver)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, cfg, err := newController(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "driver", driver.ID())
	if err := driver.Run(ctx, ctrl, registry.Options{
		Logger:   logger,
		Terminal: cfg.Terminal,
	}); err != nil {
		return err
	}

	logger.Info("finished", "seconds", ctrl.Seconds(), "state", ctrl.State())
	return nil
}
