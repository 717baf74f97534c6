package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskping/taskping/internal/config"
	"github.com/taskping/taskping/internal/visual"
)

type stubMethod struct {
	name      string
	available bool
}

func (s *stubMethod) Name() string    { return s.name }
func (s *stubMethod) Available() bool { return s.available }
func (s *stubMethod) Attempt(ctx context.Context, title, message, iconPath string) error {
	if !s.available {
		return visual.ErrUnavailable
	}
	return errors.New("not attempted in doctor")
}

// testEnv pins every resolver input so host state cannot leak in.
func testEnv(t *testing.T, sound string) *config.Resolver {
	t.Helper()
	t.Setenv(config.EnvLegacySound, sound)
	t.Setenv(config.EnvStartSound, "")
	t.Setenv(config.EnvCompleteSound, "")
	t.Setenv(config.EnvIcon, "")
	t.Setenv(config.EnvVisualEnabled, "true")
	return config.NewResolver(filepath.Join(t.TempDir(), "config.toml"), nil)
}

func writeSound(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "alert.aiff")
	require.NoError(t, os.WriteFile(path, []byte("FORM....AIFF"), 0644))
	return path
}

func findCheck(checks []Check, name string) *Check {
	for i := range checks {
		if checks[i].Name == name {
			return &checks[i]
		}
	}
	return nil
}

func TestRun_HealthySetup(t *testing.T) {
	resolver := testEnv(t, writeSound(t))
	deliverer := visual.NewDelivererWithMethods(nil,
		&stubMethod{name: "osascript", available: true},
		&stubMethod{name: "zenity", available: false},
	)

	checks := Run(resolver, deliverer)

	start := findCheck(checks, "start sound")
	require.NotNil(t, start)
	assert.Equal(t, OK, start.Severity)
	assert.Contains(t, start.Detail, "alert.aiff")

	available := findCheck(checks, "method osascript")
	require.NotNil(t, available)
	assert.Equal(t, OK, available.Severity)

	missing := findCheck(checks, "method zenity")
	require.NotNil(t, missing)
	assert.Equal(t, Info, missing.Severity)

	assert.True(t, Healthy(checks))
}

func TestRun_MissingSoundWarns(t *testing.T) {
	// Resolver falls back to the built-in sound path, which does not
	// exist in the test environment.
	resolver := testEnv(t, "")
	deliverer := visual.NewDelivererWithMethods(nil,
		&stubMethod{name: "osascript", available: true})

	if _, err := os.Stat(filepath.Join(config.SystemSoundsDir, config.DefaultStartSound)); err == nil {
		t.Skip("system sounds present on this host")
	}

	checks := Run(resolver, deliverer)
	start := findCheck(checks, "start sound")
	require.NotNil(t, start)
	assert.Equal(t, Warn, start.Severity)
	assert.False(t, Healthy(checks))
}

func TestRun_NoMethodAvailableWarns(t *testing.T) {
	resolver := testEnv(t, writeSound(t))
	deliverer := visual.NewDelivererWithMethods(nil,
		&stubMethod{name: "osascript", available: false})

	checks := Run(resolver, deliverer)
	warn := findCheck(checks, "visual delivery")
	require.NotNil(t, warn)
	assert.Equal(t, Warn, warn.Severity)
	assert.False(t, Healthy(checks))
}

func TestRun_VisualDisabledSkipsMethodChecks(t *testing.T) {
	resolver := testEnv(t, writeSound(t))
	t.Setenv(config.EnvVisualEnabled, "false")
	deliverer := visual.NewDelivererWithMethods(nil,
		&stubMethod{name: "osascript", available: true})

	checks := Run(resolver, deliverer)
	assert.Nil(t, findCheck(checks, "method osascript"))

	disabled := findCheck(checks, "visual notifications")
	require.NotNil(t, disabled)
	assert.Equal(t, Info, disabled.Severity)
}
