// Package main provides the CLI entrypoint for taskping.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskping/taskping/internal/audio"
	"github.com/taskping/taskping/internal/config"
	"github.com/taskping/taskping/internal/dispatch"
	"github.com/taskping/taskping/internal/hook"
	"github.com/taskping/taskping/internal/visual"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "taskping",
	Short: "Task completion notifications for long-running assistant sessions",
	Long: `taskping delivers sound and desktop notifications when a long-running
task starts processing or finishes.

It resolves sounds and icons from environment variables and an optional
config file, plays audio via the system player, and posts a desktop
banner through the first available delivery method.

Running taskping without a subcommand launches the interactive tester.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return nil
	},
	// Default to the interactive tester when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/taskping/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newResolver builds a resolver bound to the configured config path.
func newResolver() *config.Resolver {
	path := globalOpts.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	return config.NewResolver(path, logger)
}

// newCoordinator wires the full delivery pipeline.
func newCoordinator(resolver *config.Resolver) *dispatch.Coordinator {
	player := audio.NewPlayer(logger)
	deliverer := visual.NewDeliverer(logger)
	scriptHook := hook.NewScriptHook(resolver.HookScript(), logger)
	return dispatch.NewCoordinator(resolver, player, deliverer, scriptHook, logger)
}

func main() {
	Execute()
}
