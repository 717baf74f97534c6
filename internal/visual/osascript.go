package visual

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

const (
	// osascriptTimeout bounds the osascript run so a stalled dialog
	// subsystem never hangs the caller.
	osascriptTimeout = 5 * time.Second

	// osascriptSettleDelay gives the banner time to render before
	// control returns to the caller.
	osascriptSettleDelay = 500 * time.Millisecond
)

// osascriptMethod shows a banner through the OS scripting facility
// (AppleScript display notification). It ignores the icon: the
// scripting facility always uses the sender's own icon.
type osascriptMethod struct {
	lookPath func(string) (string, error)
	runCmd   func(ctx context.Context, name string, args ...string) ([]byte, error)
	sleep    func(time.Duration)
}

func newOsascriptMethod() *osascriptMethod {
	return &osascriptMethod{
		lookPath: exec.LookPath,
		runCmd: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
		sleep: time.Sleep,
	}
}

func (m *osascriptMethod) Name() string { return "osascript" }

func (m *osascriptMethod) Available() bool {
	_, err := m.lookPath("osascript")
	return err == nil
}

func (m *osascriptMethod) Attempt(ctx context.Context, title, message, iconPath string) error {
	bin, err := m.lookPath("osascript")
	if err != nil {
		return fmt.Errorf("%w: osascript not found", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, osascriptTimeout)
	defer cancel()

	script := fmt.Sprintf("display notification %q with title %q", message, title)
	if out, err := m.runCmd(ctx, bin, "-e", script); err != nil {
		return fmt.Errorf("osascript failed: %w (output: %s)", err, out)
	}

	m.sleep(osascriptSettleDelay)
	return nil
}
