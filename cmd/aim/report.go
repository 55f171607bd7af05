package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vovakirdan/tui-aim/internal/bot"
	"github.com/vovakirdan/tui-aim/internal/config"
)

// simReport formats bot runs as a markdown document.
func simReport(s config.Settings, skill float64, reactionMS int, runs []bot.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Simulation: %s\n\n", s)
	fmt.Fprintf(&b, "Bot skill **%.2f**, reaction **%dms**, %d session(s).\n\n", skill, reactionMS, len(runs))

	b.WriteString("| Run | Score | Targets | Clicks | Accuracy | Efficiency | Expired |\n")
	b.WriteString("|----:|------:|--------:|-------:|---------:|-----------:|--------:|\n")

	var score, accuracy, efficiency int
	for i, r := range runs {
		fmt.Fprintf(&b, "| %d | %d | %d | %d | %d%% | %d%% | %d |\n",
			i+1, r.Score, r.TargetsSpawned, r.Clicks, r.Accuracy, r.Efficiency, r.Expired)
		score += r.Score
		accuracy += r.Accuracy
		efficiency += r.Efficiency
	}

	switch n := len(runs); {
	case n == 1:
		r := runs[0]
		fmt.Fprintf(&b, "\n- %s\n- %s\n- %s\n", r.HitsLine(), r.TargetsNote(), r.AccuracyNote())
	case n > 1:
		fmt.Fprintf(&b, "\n**Average:** score %.1f, accuracy %d%%, efficiency %d%%\n",
			float64(score)/float64(n), accuracy/n, efficiency/n)
	}

	return b.String()
}

// renderMarkdown styles md for the terminal. On failure the raw markdown is
// returned alongside the error.
func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md, err
	}
	out, err := r.Render(md)
	if err != nil {
		return md, err
	}
	return out, nil
}
