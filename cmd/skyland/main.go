// skyland is a terminal side-scroller: steer the avatar through the gaps of
// the obstacle columns, avoid the clouds and collect bonuses.
//
// Usage:
//
//	skyland              - Play (same as skyland play)
//	skyland play         - Play
//	skyland config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--fps <rate>         - Override the tick rate
//	--seed <value>       - RNG seed for reproducible runs
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyland/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyland",
	Short: "Skyland - fly through the columns in your terminal",
	Long: `Skyland is a side-scrolling survival game for the terminal.

Available commands:
  play     - Start a game (default)
  config   - Print the effective configuration

Examples:
  skyland
  skyland play --seed 42
  skyland play --config ./my-skyland.yaml --fps 60
  skyland config`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger builds the logger. The TUI owns the terminal, so without a log
// file everything is discarded. The returned close func is never nil.
func newLogger(path, level string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyland",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
