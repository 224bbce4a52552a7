package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cube-chase/internal/registry"
)

var (
	flagFrames   int
	flagRealtime bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game without a display",
	Long: `Runs the game loop headless for a number of frames with no input and
prints the final game state as YAML. Equal seeds give equal output.

Examples:
  cube simulate
  cube simulate --frames 3600 --seed 42
  cube simulate --realtime --debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	driver, err := registry.Create("headless")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(driver.ID())
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

	if err := driver.Run(ctx, ctrl, registry.Options{
		Logger:   logger,
		Terminal: cfg.Terminal,
		Frames:   flagFrames,
		Realtime: flagRealtime,
	}); err != nil {
		return err
	}

	out, err := yaml.Marshal(ctrl.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
