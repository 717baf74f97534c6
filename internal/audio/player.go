package audio

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
)

// PlayerCommand is the system audio playback command.
const PlayerCommand = "afplay"

// Player plays alert sounds through the system audio player.
type Player struct {
	logger *slog.Logger

	// runCmd is swapped out in tests to avoid spawning processes.
	runCmd func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewPlayer creates a new sound player.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		logger: logger,
		runCmd: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// Play plays a sound file synchronously and reports whether it played
// cleanly. A missing file returns false without spawning the player.
// Any execution failure is absorbed: sound delivery is best-effort and
// must never fail the notification.
func (p *Player) Play(ctx context.Context, path string) bool {
	if _, err := os.Stat(path); err != nil {
		p.logger.Warn("sound file does not exist", "path", path)
		return false
	}

	p.logger.Debug("playing sound", "path", path)
	out, err := p.runCmd(ctx, PlayerCommand, path)
	if err != nil {
		p.logger.Warn("sound playback failed",
			"path", path, "error", err, "output", string(out))
		return false
	}
	return true
}
