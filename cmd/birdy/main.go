// birdy is a side-scrolling flyer game for the terminal.
//
// Usage:
//
//	birdy play               - Play in the terminal
//	birdy sim                - Run the simulation headless and print the last frame
//	birdy config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default: ~/.birdy/configs/birdy.yaml)
//	--seed <value>      - Set RNG seed for reproducible obstacle layouts
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "birdy",
	Short: "Birdy - keep the flyer between the pipes",
	Long: `Birdy is a side-scrolling game: the flyer falls under gravity,
a key press flaps it upward and pairs of pipes scroll in from the right.
Touching a pipe or falling out of the window restarts the run.

Available commands:
  play     - Play in the terminal
  sim      - Run the simulation without a terminal
  config   - Print the effective configuration

Examples:
  birdy play
  birdy play --fit --seed 42
  birdy sim --steps 600 --flap-every 20
  birdy config --config ./my-birdy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the CLI logger writing to w at the level given by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "birdy",
	})
	logger.SetLevel(level)
	return logger, nil
}
