package visual

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/taskping/taskping/internal/config"
)

const (
	// terminalNotifierTimeout bounds the helper run.
	terminalNotifierTimeout = 5 * time.Second

	// terminalNotifierBanner is the -timeout argument passed to the
	// helper: how long the banner itself stays visible, in seconds.
	terminalNotifierBanner = "10"
)

// terminalNotifierMethod shows a banner through the terminal-notifier
// helper. Only attempted when the executable is on the search path.
// It deliberately never passes a -sound argument: audio is delivered
// independently by the sound player, and a second source would
// double-play the alert.
type terminalNotifierMethod struct {
	lookPath func(string) (string, error)
	runCmd   func(ctx context.Context, name string, args ...string) ([]byte, error)
	exists   func(string) bool
}

func newTerminalNotifierMethod() *terminalNotifierMethod {
	return &terminalNotifierMethod{
		lookPath: exec.LookPath,
		runCmd: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
		exists: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && !info.IsDir()
		},
	}
}

func (m *terminalNotifierMethod) Name() string { return "terminal-notifier" }

func (m *terminalNotifierMethod) Available() bool {
	_, err := m.lookPath("terminal-notifier")
	return err == nil
}

func (m *terminalNotifierMethod) Attempt(ctx context.Context, title, message, iconPath string) error {
	bin, err := m.lookPath("terminal-notifier")
	if err != nil {
		return fmt.Errorf("%w: terminal-notifier not found", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, terminalNotifierTimeout)
	defer cancel()

	args := []string{
		"-title", title,
		"-message", message,
	}
	if icon := m.pickIcon(iconPath); icon != "" {
		args = append(args, "-contentImage", icon, "-appIcon", icon)
	}
	args = append(args, "-timeout", terminalNotifierBanner)

	if out, err := m.runCmd(ctx, bin, args...); err != nil {
		return fmt.Errorf("terminal-notifier failed: %w (output: %s)", err, out)
	}
	return nil
}

// pickIcon chooses the banner icon: the explicitly resolved icon, then
// the installed app bundle icon, then the generic system alert icon.
func (m *terminalNotifierMethod) pickIcon(iconPath string) string {
	if iconPath != "" && m.exists(iconPath) {
		return iconPath
	}
	if m.exists(config.AppIconPath) {
		return config.AppIconPath
	}
	if m.exists(config.AlertIconPath) {
		return config.AlertIconPath
	}
	return ""
}
