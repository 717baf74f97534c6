// Package visual delivers desktop banner notifications through an
// ordered chain of interchangeable delivery methods, stopping at the
// first that succeeds. The methods are tried strictly in sequence:
// parallel attempts would show the user duplicate banners.
package visual

import (
	"context"
	"errors"
	"log/slog"
)

// ErrUnavailable marks a delivery method whose runtime dependency or
// executable is absent on this host. It is a skip, not a failure.
var ErrUnavailable = errors.New("delivery method unavailable")

// Method is one concrete mechanism for showing a desktop banner.
type Method interface {
	// Name identifies the method in outcomes and logs.
	Name() string

	// Available reports whether the method could plausibly work on
	// this host. Attempt re-checks; Available exists for diagnostics.
	Available() bool

	// Attempt tries to show the banner. Returning ErrUnavailable (or
	// any other error) means "this method did not succeed" and the
	// chain moves on.
	Attempt(ctx context.Context, title, message, iconPath string) error
}

// Deliverer walks the fixed method chain.
type Deliverer struct {
	methods []Method
	logger  *slog.Logger
}

// NewDeliverer creates a deliverer with the standard method order:
// osascript, terminal-notifier, beeep, zenity.
func NewDeliverer(logger *slog.Logger) *Deliverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deliverer{
		methods: []Method{
			newOsascriptMethod(),
			newTerminalNotifierMethod(),
			&beeepMethod{},
			&zenityMethod{},
		},
		logger: logger,
	}
}

// NewDelivererWithMethods creates a deliverer with an explicit chain.
func NewDelivererWithMethods(logger *slog.Logger, methods ...Method) *Deliverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deliverer{methods: methods, logger: logger}
}

// Methods returns the chain in delivery order, for diagnostics.
func (d *Deliverer) Methods() []Method {
	return d.methods
}

// Send attempts each method in order until one succeeds. It returns
// whether a banner was delivered and the name of the winning method
// (empty when every method failed). Individual failures are logged
// and swallowed; Send itself never errors.
func (d *Deliverer) Send(ctx context.Context, title, message, iconPath string) (bool, string) {
	for _, m := range d.methods {
		err := m.Attempt(ctx, title, message, iconPath)
		if err == nil {
			d.logger.Debug("visual notification delivered", "method", m.Name())
			return true, m.Name()
		}
		if errors.Is(err, ErrUnavailable) {
			d.logger.Debug("delivery method unavailable", "method", m.Name())
			continue
		}
		d.logger.Warn("delivery method failed", "method", m.Name(), "error", err)
	}
	return false, ""
}
