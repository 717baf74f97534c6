package main

import (
	"github.com/spf13/cobra"

	"github.com/taskping/taskping/internal/audio"
	"github.com/taskping/taskping/internal/config"
	"github.com/taskping/taskping/internal/tui"
	"github.com/taskping/taskping/internal/visual"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive delivery tester",
	Long: `Launch an interactive tester for the delivery pipeline.

Each entry fires one piece of the pipeline (a sound, a single visual
method, or the whole thing) and shows what actually reached the
desktop.

Key bindings:
  j/k, ↑/↓    Navigate
  enter       Fire selected target
  q           Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	resolver := newResolver()
	deliverer := visual.NewDeliverer(logger)
	player := audio.NewPlayer(logger)
	coordinator := newCoordinator(resolver)

	return tui.Run(tui.New(
		coordinator,
		deliverer,
		player,
		resolver.ResolveSound(config.RoleStart),
		resolver.ResolveSound(config.RoleCompletion),
	))
}
