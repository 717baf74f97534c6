// Package hook implements the optional pre-delivery helper script: a
// site-specific executable that can take over notification delivery
// entirely. Any failure in the hook is swallowed so the built-in
// pipeline always remains the fallback.
package hook

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/taskping/taskping/internal/dispatch"
)

// scriptTimeout bounds the helper run so a wedged script never blocks
// the notify call.
const scriptTimeout = 10 * time.Second

// ScriptHook delegates delivery to an external script invoked with
// positional arguments (title, message, kind). The script is trusted
// only when it exits zero and prints a single JSON outcome object to
// stdout; everything else is "no opinion".
type ScriptHook struct {
	path   string
	logger *slog.Logger

	runCmd func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewScriptHook creates a hook for the given script path.
func NewScriptHook(path string, logger *slog.Logger) *ScriptHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScriptHook{
		path:   path,
		logger: logger,
		runCmd: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Path returns the configured script location.
func (h *ScriptHook) Path() string { return h.path }

// TryDeliver runs the helper script if it exists. Returns (outcome,
// true) only on a clean exit with parseable JSON; any other condition
// falls through to the built-in pipeline.
func (h *ScriptHook) TryDeliver(ctx context.Context, title, message string, kind dispatch.Kind) (*dispatch.Outcome, bool) {
	if h.path == "" {
		return nil, false
	}

	info, err := os.Stat(h.path)
	if err != nil || info.IsDir() {
		return nil, false
	}

	// The script may have been unpacked without the execute bit.
	if info.Mode()&0o111 == 0 {
		if err := os.Chmod(h.path, 0o755); err != nil {
			h.logger.Warn("hook script not executable", "path", h.path, "error", err)
			return nil, false
		}
	}

	ctx, cancel := context.WithTimeout(ctx, scriptTimeout)
	defer cancel()

	h.logger.Debug("running hook script", "path", h.path, "kind", string(kind))
	out, err := h.runCmd(ctx, h.path, title, message, string(kind))
	if err != nil {
		h.logger.Warn("hook script failed, falling back to built-in delivery",
			"path", h.path, "error", err)
		return nil, false
	}

	var outcome dispatch.Outcome
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(out))), &outcome); err != nil {
		h.logger.Warn("hook script output was not a JSON outcome",
			"path", h.path, "error", err)
		return nil, false
	}

	return &outcome, true
}
