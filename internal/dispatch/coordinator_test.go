package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskping/taskping/internal/config"
)

type fakeResolver struct {
	sound         string
	icon          string
	visualEnabled bool
}

func (f *fakeResolver) ResolveSound(role config.SoundRole) string { return f.sound }
func (f *fakeResolver) ResolveIcon() string                       { return f.icon }
func (f *fakeResolver) VisualEnabled() bool                       { return f.visualEnabled }

type fakePlayer struct {
	ok     bool
	played []string
}

func (f *fakePlayer) Play(ctx context.Context, path string) bool {
	f.played = append(f.played, path)
	return f.ok
}

type fakeSender struct {
	ok     bool
	method string
	calls  int
	title  string
	icon   string
}

func (f *fakeSender) Send(ctx context.Context, title, message, iconPath string) (bool, string) {
	f.calls++
	f.title = title
	f.icon = iconPath
	return f.ok, f.method
}

type fakeHook struct {
	outcome *Outcome
	handled bool
	calls   int
}

func (f *fakeHook) TryDeliver(ctx context.Context, title, message string, kind Kind) (*Outcome, bool) {
	f.calls++
	return f.outcome, f.handled
}

func newTestCoordinator(r *fakeResolver, p *fakePlayer, s *fakeSender, h Hook) *Coordinator {
	return NewCoordinator(r, p, s, h, nil)
}

func TestNotify_BothChannelsSucceed(t *testing.T) {
	resolver := &fakeResolver{sound: "/s/Hero.aiff", icon: "/i.png", visualEnabled: true}
	player := &fakePlayer{ok: true}
	sender := &fakeSender{ok: true, method: "osascript"}

	c := newTestCoordinator(resolver, player, sender, nil)
	out := c.Notify(context.Background(), KindComplete, "All done")

	assert.Equal(t, StatusSuccess, out.Status)
	assert.Equal(t, "/s/Hero.aiff", out.PlayedSound())
	assert.True(t, out.Visual)
	assert.Equal(t, "osascript", out.Method)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, []string{"/s/Hero.aiff"}, player.played)
	assert.Equal(t, "Assistant Response Ready", sender.title)
	assert.Equal(t, "/i.png", sender.icon)
}

func TestNotify_SoundOnlyStillSucceeds(t *testing.T) {
	resolver := &fakeResolver{sound: "/s.aiff", visualEnabled: true}
	player := &fakePlayer{ok: true}
	sender := &fakeSender{ok: false}

	c := newTestCoordinator(resolver, player, sender, nil)
	out := c.Notify(context.Background(), KindStart, "Starting")

	assert.Equal(t, StatusSuccess, out.Status)
	assert.True(t, out.SoundDelivered())
	assert.False(t, out.Visual)
	assert.Empty(t, out.Method)
}

func TestNotify_VisualOnlyStillSucceeds(t *testing.T) {
	resolver := &fakeResolver{sound: "/s.aiff", visualEnabled: true}
	player := &fakePlayer{ok: false}
	sender := &fakeSender{ok: true, method: "beeep"}

	c := newTestCoordinator(resolver, player, sender, nil)
	out := c.Notify(context.Background(), KindComplete, "Done")

	assert.Equal(t, StatusSuccess, out.Status)
	assert.Nil(t, out.Sound)
	assert.True(t, out.Visual)
}

func TestNotify_BothFail(t *testing.T) {
	resolver := &fakeResolver{sound: "/s.aiff", visualEnabled: true}
	player := &fakePlayer{ok: false}
	sender := &fakeSender{ok: false}

	c := newTestCoordinator(resolver, player, sender, nil)
	out := c.Notify(context.Background(), KindComplete, "Done")

	assert.Equal(t, StatusError, out.Status)
	assert.False(t, out.Delivered())
}

func TestNotify_VisualDisabledSkipsSender(t *testing.T) {
	resolver := &fakeResolver{sound: "/s.aiff", visualEnabled: false}
	player := &fakePlayer{ok: true}
	sender := &fakeSender{ok: true, method: "osascript"}

	c := newTestCoordinator(resolver, player, sender, nil)
	out := c.Notify(context.Background(), KindComplete, "Done")

	assert.Equal(t, StatusSuccess, out.Status)
	assert.False(t, out.Visual)
	assert.Zero(t, sender.calls, "sender must not run when visuals are disabled")
}

func TestNotify_HookShortCircuits(t *testing.T) {
	hookOutcome := &Outcome{
		ID:      "hook-id",
		Status:  StatusSuccess,
		Message: "handled elsewhere",
		Visual:  true,
		Method:  "custom",
	}
	hook := &fakeHook{outcome: hookOutcome, handled: true}
	resolver := &fakeResolver{sound: "/s.aiff", visualEnabled: true}
	player := &fakePlayer{ok: true}
	sender := &fakeSender{ok: true}

	c := newTestCoordinator(resolver, player, sender, hook)
	out := c.Notify(context.Background(), KindComplete, "Done")

	// The hook's outcome passes through untouched.
	require.Equal(t, 1, hook.calls)
	assert.Equal(t, *hookOutcome, out)
	assert.Empty(t, player.played, "hook delivery must suppress the built-in pipeline")
	assert.Zero(t, sender.calls)
}

func TestNotify_HookFillsMissingID(t *testing.T) {
	hook := &fakeHook{outcome: &Outcome{Status: StatusSuccess}, handled: true}
	c := newTestCoordinator(&fakeResolver{}, &fakePlayer{}, &fakeSender{}, hook)

	out := c.Notify(context.Background(), KindComplete, "Done")
	assert.NotEmpty(t, out.ID)
}

func TestNotify_HookDeclinesFallsThrough(t *testing.T) {
	hook := &fakeHook{handled: false}
	resolver := &fakeResolver{sound: "/s.aiff", visualEnabled: true}
	player := &fakePlayer{ok: true}
	sender := &fakeSender{ok: true, method: "osascript"}

	c := newTestCoordinator(resolver, player, sender, hook)
	out := c.Notify(context.Background(), KindComplete, "Done")

	assert.Equal(t, 1, hook.calls)
	assert.Equal(t, StatusSuccess, out.Status)
	assert.NotEmpty(t, player.played)
	assert.Equal(t, 1, sender.calls)
}

func TestNotify_UniqueIDs(t *testing.T) {
	c := newTestCoordinator(&fakeResolver{sound: "/s.aiff"}, &fakePlayer{ok: true}, &fakeSender{}, nil)

	a := c.Notify(context.Background(), KindComplete, "one")
	b := c.Notify(context.Background(), KindComplete, "two")
	assert.NotEqual(t, a.ID, b.ID)
}
