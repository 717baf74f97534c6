// Package main is the entry point for the taskpingd notification server.
//
// taskpingd reads newline-delimited JSON requests on stdin, delivers a
// notification for each, and writes one JSON outcome per request on
// stdout. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskping/taskping/internal/audio"
	"github.com/taskping/taskping/internal/config"
	"github.com/taskping/taskping/internal/dispatch"
	"github.com/taskping/taskping/internal/doctor"
	"github.com/taskping/taskping/internal/hook"
	"github.com/taskping/taskping/internal/server"
	"github.com/taskping/taskping/internal/visual"
)

var (
	// Build-time variables
	version = "dev"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	configPath := flag.String("config", "", "Path to config file (default: ~/.config/taskping/config.toml)")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		println("taskpingd version", version)
		os.Exit(0)
	}

	// Set up structured logging on stderr; stdout is the response stream.
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	os.Exit(run(logger, *configPath))
}

func run(logger *slog.Logger, configPath string) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if configPath == "" {
		configPath = config.ConfigPath()
	}

	resolver := config.NewResolver(configPath, logger)
	player := audio.NewPlayer(logger)
	deliverer := visual.NewDeliverer(logger)
	scriptHook := hook.NewScriptHook(resolver.HookScript(), logger)
	coordinator := dispatch.NewCoordinator(resolver, player, deliverer, scriptHook, logger)

	logger.Info("starting taskpingd", "version", version, "config", configPath)

	// Verify the environment up front so degraded delivery is visible
	// in the log rather than discovered one silent notification at a time.
	res := resolver.Resources()
	for _, c := range doctor.Run(resolver, deliverer) {
		switch c.Severity {
		case doctor.Warn:
			logger.Warn("startup check", "check", c.Name, "detail", c.Detail)
		default:
			logger.Debug("startup check", "check", c.Name, "detail", c.Detail)
		}
	}

	// Watch resolved resources so an unplugged sound file or icon shows
	// up in the log when it disappears, not when delivery fails.
	watcher, err := server.NewResourceWatcher(logger,
		res.StartSound, res.CompleteSound, res.Icon, resolver.HookScript())
	if err != nil {
		logger.Warn("resource watcher unavailable", "error", err)
	} else {
		watcher.Start()
		defer watcher.Stop()
	}

	srv := server.New(coordinator, os.Stdin, os.Stdout, logger)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", "error", err)
		return 1
	}

	logger.Info("taskpingd stopped")
	return 0
}
