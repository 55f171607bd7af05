package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aim/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the spawn interval and bubble lifetime of every difficulty.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty presets:")
	fmt.Println()

	fmt.Printf("  %-10s  %-12s  %s\n", "Difficulty", "Spawn every", "Lifetime")
	fmt.Printf("  %-10s  %-12s  %s\n", "----------", "-----------", "--------")

	for _, d := range config.Difficulties {
		p, _ := config.PresetFor(d)
		fmt.Printf("  %-10s  %-12s  %s\n", d, p.SpawnEvery, p.Life)
	}

	fmt.Println()
	fmt.Println("Run 'aim play --difficulty <name>' to play a preset.")
}
