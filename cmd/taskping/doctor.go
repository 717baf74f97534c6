package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taskping/taskping/internal/dispatch"
	"github.com/taskping/taskping/internal/doctor"
	"github.com/taskping/taskping/internal/visual"
)

var doctorOpts struct {
	fire bool
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	nameStyle = lipgloss.NewStyle().Width(24)
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that notifications can be delivered on this host",
	Long: `Check the delivery environment: resolved sound files, notification
icon, and the availability of each visual delivery method.

With --fire, also sends a real test notification through the full
pipeline and reports the outcome.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)

	doctorCmd.Flags().BoolVar(&doctorOpts.fire, "fire", false,
		"Send a test notification through the full pipeline")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	resolver := newResolver()
	deliverer := visual.NewDeliverer(logger)

	checks := doctor.Run(resolver, deliverer)
	for _, c := range checks {
		fmt.Printf("%s %s %s\n",
			severityBadge(c.Severity), nameStyle.Render(c.Name), c.Detail)
	}

	if doctorOpts.fire {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		coordinator := newCoordinator(resolver)
		outcome := coordinator.Notify(ctx, dispatch.KindComplete, "Test notification")

		fmt.Println()
		if outcome.Delivered() {
			fmt.Printf("%s test notification delivered (sound=%v visual=%v method=%s)\n",
				okStyle.Render("ok"), outcome.SoundDelivered(), outcome.Visual, outcome.Method)
		} else {
			fmt.Printf("%s test notification failed: %s\n",
				warnStyle.Render("warn"), outcome.Message)
		}
	}

	if !doctor.Healthy(checks) {
		return fmt.Errorf("environment has delivery problems")
	}
	return nil
}

func severityBadge(s doctor.Severity) string {
	switch s {
	case doctor.OK:
		return okStyle.Render("  ok")
	case doctor.Info:
		return infoStyle.Render("info")
	default:
		return warnStyle.Render("warn")
	}
}
