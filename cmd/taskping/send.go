package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskping/taskping/internal/dispatch"
	"github.com/taskping/taskping/internal/output"
)

var sendOpts struct {
	kind   string
	format string
}

var sendCmd = &cobra.Command{
	Use:   "send [message]",
	Short: "Deliver a notification for a task event",
	Long: `Deliver a sound and desktop notification for a task event.

The message classifies the notification: messages containing "start" or
"processing" are treated as task-start events, everything else as task
completion. Use --kind to override classification.

Examples:
  # Completion notification
  taskping send "Build finished"

  # Explicit start notification
  taskping send --kind start "Deploy running"

  # Machine-readable outcome
  taskping send --output json "Tests passed"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVarP(&sendOpts.kind, "kind", "k", "",
		"Notification kind (start, complete; classified from message if empty)")
	sendCmd.Flags().StringVarP(&sendOpts.format, "output", "o", "plain",
		"Output format (plain, json, yaml)")
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	message := "Task completed"
	if len(args) > 0 && args[0] != "" {
		message = args[0]
	}

	kind := dispatch.Classify(message)
	if sendOpts.kind != "" {
		k, ok := dispatch.ParseKind(sendOpts.kind)
		if !ok {
			return fmt.Errorf("unknown kind %q (want start or complete)", sendOpts.kind)
		}
		kind = k
	}

	formatter, err := output.NewFormatter(output.FormatType(sendOpts.format))
	if err != nil {
		return err
	}

	resolver := newResolver()
	coordinator := newCoordinator(resolver)

	outcome := coordinator.Notify(ctx, kind, message)
	return formatter.Format(os.Stdout, outcome)
}
