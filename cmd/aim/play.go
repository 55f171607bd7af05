package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-aim/internal/core"
	"github.com/vovakirdan/tui-aim/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Open the settings panel and play. The terminal must report mouse clicks.

Controls:
  Arrows/HJKL  - Pick and adjust a setting
  Enter        - Start
  Click        - Pop a bubble
  Esc          - End the round early
  R            - Play again (results panel)
  S            - Back to settings (results panel)
  Q/Ctrl+C     - Quit

Difficulty presets:
  easy    - A bubble every 900ms, each lives 1800ms
  medium  - A bubble every 650ms, each lives 1300ms
  hard    - A bubble every 520ms, each lives 1000ms

Examples:
  aim play
  aim play --difficulty hard
  aim play --size 40 --duration 30
  aim play --config ./my-aim.yaml --log aim.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs go to a file or nowhere; stderr would corrupt the alt screen
	logger, closeLog, err := newLogger(io.Discard, "aim")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	logger.Info("starting", "settings", cfg.Settings, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
