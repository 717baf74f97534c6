package visual

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/ncruces/zenity"
)

// beeepMethod delivers through the beeep library binding to the native
// notification framework. The binding is compiled in, so availability
// is unconditional; delivery can still fail at the OS boundary.
type beeepMethod struct{}

func (m *beeepMethod) Name() string    { return "beeep" }
func (m *beeepMethod) Available() bool { return true }

func (m *beeepMethod) Attempt(_ context.Context, title, message, iconPath string) error {
	if err := beeep.Notify(title, message, iconPath); err != nil {
		return fmt.Errorf("beeep notify failed: %w", err)
	}
	return nil
}

// zenityMethod is the last-resort binding through the zenity library.
// Uses the generic info icon: by the time the chain reaches here the
// richer icon handling of earlier methods has already failed.
type zenityMethod struct{}

func (m *zenityMethod) Name() string    { return "zenity" }
func (m *zenityMethod) Available() bool { return true }

func (m *zenityMethod) Attempt(_ context.Context, title, message, _ string) error {
	if err := zenity.Notify(message, zenity.Title(title), zenity.InfoIcon); err != nil {
		return fmt.Errorf("zenity notify failed: %w", err)
	}
	return nil
}
