// cube is a small arcade game: steer a cube to catch the roaming life and
// dodge the enemies until the point budget runs out.
//
// Usage:
//
//	cube play                - Play in the terminal
//	cube play --driver window - Play in a desktop window
//	cube simulate            - Run a headless simulation and print the final state
//	cube list                - List available drivers
//	cube config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import drivers to register them
	_ "github.com/vovakirdan/cube-chase/internal/platform/headless"
	_ "github.com/vovakirdan/cube-chase/internal/platform/tui"
	_ "github.com/vovakirdan/cube-chase/internal/platform/window"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "Cube Chase - catch the life, dodge the enemies",
	Long: `Cube Chase is a tiny real-time arcade game.

Steer the green cube with the arrow keys. Catching the yellow life makes
the cube grow and costs points; touching a red enemy shrinks it and gives
points back. The game ends when the point bar on the left runs out.

Available commands:
  play      - Play the game
  simulate  - Run a headless simulation
  list      - Show available display drivers
  config    - Print the effective configuration

Examples:
  cube play
  cube play --driver window
  cube simulate --frames 3600 --seed 42
  cube play --config ./my-cube.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}
