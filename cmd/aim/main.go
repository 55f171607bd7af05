// aim is a terminal aim trainer: pop bubbles with the mouse before they
// vanish.
//
// Usage:
//
//	aim play                 - Play on this terminal
//	aim serve                - Start SSH server for remote play
//	aim sim                  - Run a headless bot session and print results
//	aim presets              - List difficulty presets
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible bubble placement
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aim/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagVerbose bool

	// Session flags shared by play, serve and sim
	flagSize       int
	flagDuration   int
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aim",
	Short: "Aim trainer - pop bubbles in your terminal",
	Long: `Aim is a terminal aim trainer. Bubbles appear at random spots and
vanish after a short lifetime; click them before they do.

Available commands:
  play     - Play on this terminal (needs mouse support)
  serve    - Start SSH server for remote play
  sim      - Run a headless bot session
  presets  - List difficulty presets

Examples:
  aim play
  aim play --difficulty hard --size 40 --duration 30
  aim serve --ssh :2222
  aim sim --skill 0.9 --runs 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	for _, cmd := range []*cobra.Command{playCmd, serveCmd, simCmd} {
		cmd.Flags().IntVar(&flagSize, "size", 0, "Bubble size in px (default from config)")
		cmd.Flags().IntVar(&flagDuration, "duration", 0, "Session length in seconds (default from config)")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(presetsCmd)
}

// loadConfig reads the config file and applies the session flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	cfg.Override(flagSize, flagDuration, flagDifficulty)
	if err := cfg.Settings.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log, or to fallback when no file
// was given. The returned close function is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
