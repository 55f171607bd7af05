package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aim/internal/bot"
	"github.com/vovakirdan/tui-aim/internal/config"
)

var (
	flagSkill    float64
	flagReaction int
	flagRuns     int
	flagMarkdown bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless bot sessions",
	Long: `Play sessions with a simulated player and print the results.

The bot clicks each bubble after a reaction delay. With probability --skill
the click lands on the bubble; otherwise it lands just beside it. Sessions
run on a virtual clock, so a 60 second round completes instantly.

Examples:
  aim sim
  aim sim --skill 0.95 --reaction 300
  aim sim --difficulty hard --runs 10 --seed 42
  aim sim --runs 5 --markdown`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSkill, "skill", bot.DefaultSkill, "Probability a click lands on its bubble (0-1)")
	simCmd.Flags().IntVar(&flagReaction, "reaction", int(bot.DefaultReaction/time.Millisecond), "Reaction time in milliseconds")
	simCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of sessions to play")
	simCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Print a styled markdown report")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagRuns < 1 {
		return errors.New("--runs must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "aim-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := bot.DefaultOptions()
	opts.Skill = flagSkill
	opts.Reaction = time.Duration(flagReaction) * time.Millisecond
	opts.Width = cfg.Display.CellWidth * 80
	opts.Height = cfg.Display.CellHeight * 22
	opts.Logger = logger

	reports, err := simulate(ctx, cfg.Settings, opts, flagRuns, flagSeed)
	if err != nil {
		return err
	}

	if flagMarkdown {
		out, renderErr := renderMarkdown(simReport(cfg.Settings, flagSkill, flagReaction, reports), 100)
		if renderErr != nil {
			logger.Warn("markdown render failed", "err", renderErr)
		}
		fmt.Print(out)
		return nil
	}

	printSimTable(cfg.Settings, reports)
	return nil
}

// simulate plays runs bot sessions. A non-zero seed gives run i the seed
// seed+i so every run is reproducible on its own.
func simulate(ctx context.Context, s config.Settings, opts bot.Options, runs int, seed int64) ([]bot.Report, error) {
	reports := make([]bot.Report, 0, max(runs, 0))
	for i := range runs {
		if seed != 0 {
			opts.Seed = seed + int64(i)
		}
		r, err := bot.Run(ctx, s, opts)
		if err != nil {
			return reports, fmt.Errorf("run %d: %w", i+1, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func printSimTable(s config.Settings, reports []bot.Report) {
	fmt.Printf("Simulating %d session(s): %s, skill %.2f, reaction %dms\n",
		len(reports), s, flagSkill, flagReaction)
	fmt.Println()

	fmt.Printf("  %-4s  %-6s  %-8s  %-7s  %-9s  %-10s  %s\n",
		"Run", "Score", "Targets", "Clicks", "Accuracy", "Efficiency", "Expired")
	fmt.Printf("  %-4s  %-6s  %-8s  %-7s  %-9s  %-10s  %s\n",
		"---", "-----", "-------", "------", "--------", "----------", "-------")

	var totalScore, totalAccuracy, totalEfficiency int
	for i, r := range reports {
		fmt.Printf("  %-4d  %-6d  %-8d  %-7d  %-9s  %-10s  %d\n",
			i+1, r.Score, r.TargetsSpawned, r.Clicks,
			fmt.Sprintf("%d%%", r.Accuracy), fmt.Sprintf("%d%%", r.Efficiency), r.Expired)

		totalScore += r.Score
		totalAccuracy += r.Accuracy
		totalEfficiency += r.Efficiency
	}

	switch n := len(reports); {
	case n == 1:
		r := reports[0]
		fmt.Println()
		fmt.Println(r.HitsLine())
		fmt.Println(r.TargetsNote())
		fmt.Println(r.AccuracyNote())
	case n > 1:
		fmt.Println()
		fmt.Printf("Average: score %.1f, accuracy %d%%, efficiency %d%%\n",
			float64(totalScore)/float64(n), totalAccuracy/n, totalEfficiency/n)
	}
}
