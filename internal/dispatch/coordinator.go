// Package dispatch coordinates notification delivery: it classifies
// events, resolves resources and drives the sound and visual channels,
// always producing a structured outcome and never an error.
package dispatch

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/taskping/taskping/internal/config"
)

// Resolver resolves delivery resources per call.
type Resolver interface {
	ResolveSound(role config.SoundRole) string
	ResolveIcon() string
	VisualEnabled() bool
}

// SoundPlayer plays an alert sound, reporting success.
type SoundPlayer interface {
	Play(ctx context.Context, path string) bool
}

// VisualSender shows a desktop banner, reporting success and the
// delivery method that won.
type VisualSender interface {
	Send(ctx context.Context, title, message, iconPath string) (bool, string)
}

// Hook is an optional pre-delivery collaborator. When it returns
// (outcome, true) the coordinator short-circuits and returns that
// outcome unchanged. Any hook failure is "no opinion": (nil, false).
type Hook interface {
	TryDeliver(ctx context.Context, title, message string, kind Kind) (*Outcome, bool)
}

// Coordinator runs the delivery pipeline for one notification at a
// time. It holds no mutable state, so overlapping Notify calls from a
// concurrent host are safe; they may overlap audio and banners, which
// is acceptable.
type Coordinator struct {
	resolver Resolver
	sound    SoundPlayer
	visual   VisualSender
	hook     Hook
	logger   *slog.Logger
}

// NewCoordinator wires the delivery pipeline. hook may be nil.
func NewCoordinator(resolver Resolver, sound SoundPlayer, visual VisualSender, hook Hook, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		resolver: resolver,
		sound:    sound,
		visual:   visual,
		hook:     hook,
		logger:   logger,
	}
}

// Notify delivers a notification for the given kind and message and
// returns the aggregated outcome. It never returns an error: every
// delivery failure degrades to a false flag in the outcome so the
// hosting process always has a result to report.
func (c *Coordinator) Notify(ctx context.Context, kind Kind, message string) Outcome {
	req := Request{
		ID:      ulid.Make().String(),
		Kind:    kind,
		Message: message,
	}
	title := kind.Title()

	c.logger.Info("notification requested",
		"id", req.ID, "kind", string(kind), "message", message)

	if c.hook != nil {
		if out, ok := c.hook.TryDeliver(ctx, title, message, kind); ok && out != nil {
			c.logger.Info("hook delivered notification", "id", req.ID)
			if out.ID == "" {
				out.ID = req.ID
			}
			return *out
		}
	}

	soundPath := c.resolver.ResolveSound(kind.Role())
	soundOK := c.sound.Play(ctx, soundPath)

	visualOK := false
	method := ""
	if c.resolver.VisualEnabled() {
		icon := c.resolver.ResolveIcon()
		visualOK, method = c.visual.Send(ctx, title, message, icon)
	} else {
		c.logger.Debug("visual notifications disabled", "id", req.ID)
	}

	out := Outcome{
		ID:      req.ID,
		Status:  StatusError,
		Message: message,
		Visual:  visualOK,
		Method:  method,
	}
	if soundOK {
		out.Sound = &soundPath
	}
	if soundOK || visualOK {
		out.Status = StatusSuccess
	}

	c.logger.Info("notification finished",
		"id", req.ID, "status", out.Status,
		"sound", soundOK, "visual", visualOK, "method", method)
	return out
}
