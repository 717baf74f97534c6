package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables recognised by the resolver.
const (
	EnvStartSound    = "TASKPING_START_SOUND"
	EnvCompleteSound = "TASKPING_COMPLETE_SOUND"

	// EnvLegacySound is the legacy single-sound override. When it
	// names an existing file it wins over both kind-specific variables.
	EnvLegacySound = "TASKPING_NOTIFICATION_SOUND"

	EnvVisualEnabled = "TASKPING_VISUAL_NOTIFICATIONS"
	EnvIcon          = "TASKPING_NOTIFICATION_ICON"
)

// SoundRole selects which sound a notification kind maps to.
type SoundRole int

const (
	// RoleStart is the sound played when the assistant begins work.
	RoleStart SoundRole = iota
	// RoleCompletion is the sound played when it finishes.
	RoleCompletion
)

func (r SoundRole) String() string {
	if r == RoleStart {
		return "start"
	}
	return "completion"
}

// Resources is a snapshot of resolved delivery resources.
type Resources struct {
	StartSound    string
	CompleteSound string
	Icon          string
	VisualEnabled bool
}

// Resolver maps environment variables, the optional config file and
// filesystem state to concrete resource paths. It holds no cached
// state: every call re-reads the environment and the config file, so
// configuration changes take effect without restarting the process.
type Resolver struct {
	configPath string
	logger     *slog.Logger
}

// NewResolver creates a resolver. configPath may be empty to use the
// default config file location.
func NewResolver(configPath string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{configPath: configPath, logger: logger}
}

// load reads the config file fresh. Errors degrade to defaults; a
// broken config file must never block a notification.
func (r *Resolver) load() *Config {
	cfg, err := LoadConfig(r.configPath)
	if err != nil {
		r.logger.Warn("failed to load config file, using defaults", "error", err)
		return DefaultConfig()
	}
	return cfg
}

// ResolveSound returns the sound file path for the given role.
// Resolution order: legacy env override, kind-specific env override,
// config file override (each only when the named file exists), then
// the built-in system sound. The default path is not existence-checked
// here; playback verifies it.
func (r *Resolver) ResolveSound(role SoundRole) string {
	if legacy := os.Getenv(EnvLegacySound); legacy != "" && fileExists(legacy) {
		r.logger.Debug("using legacy sound override", "path", legacy)
		return legacy
	}

	envVar := EnvStartSound
	defaultSound := DefaultStartSound
	if role == RoleCompletion {
		envVar = EnvCompleteSound
		defaultSound = DefaultCompleteSound
	}

	if custom := os.Getenv(envVar); custom != "" && fileExists(custom) {
		r.logger.Debug("using custom sound", "role", role.String(), "path", custom)
		return custom
	}

	cfg := r.load()
	fileSound := cfg.Sounds.Start
	if role == RoleCompletion {
		fileSound = cfg.Sounds.Complete
	}
	if fileSound != "" && fileExists(fileSound) {
		r.logger.Debug("using config file sound", "role", role.String(), "path", fileSound)
		return fileSound
	}

	return filepath.Join(SystemSoundsDir, defaultSound)
}

// ResolveIcon returns the icon path for visual notifications, or an
// empty string when no icon is available. Order: env override, config
// file, bundled icon next to the binary, installed app bundle icon.
func (r *Resolver) ResolveIcon() string {
	if custom := os.Getenv(EnvIcon); custom != "" && fileExists(custom) {
		r.logger.Debug("using custom notification icon", "path", custom)
		return custom
	}

	cfg := r.load()
	if cfg.Visual.Icon != "" && fileExists(cfg.Visual.Icon) {
		return cfg.Visual.Icon
	}

	if bundled := BundledIconPath(); bundled != "" && fileExists(bundled) {
		return bundled
	}

	if fileExists(AppIconPath) {
		return AppIconPath
	}

	return ""
}

// VisualEnabled reports whether desktop banners should be attempted.
// The environment wins over the config file; unset means enabled.
func (r *Resolver) VisualEnabled() bool {
	if v := os.Getenv(EnvVisualEnabled); v != "" {
		return truthy(v)
	}
	cfg := r.load()
	if cfg.Visual.Enabled != nil {
		return *cfg.Visual.Enabled
	}
	return true
}

// HookScript returns the path of the pre-delivery hook script, even if
// it does not exist. The hook itself decides whether to run.
func (r *Resolver) HookScript() string {
	cfg := r.load()
	if cfg.Hook.Script != "" {
		return cfg.Hook.Script
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "taskping-hook.sh")
}

// Resources resolves everything at once, for the doctor command and
// the serve-mode resource watcher.
func (r *Resolver) Resources() Resources {
	return Resources{
		StartSound:    r.ResolveSound(RoleStart),
		CompleteSound: r.ResolveSound(RoleCompletion),
		Icon:          r.ResolveIcon(),
		VisualEnabled: r.VisualEnabled(),
	}
}

// BundledIconPath returns the expected location of the icon shipped
// alongside the binary, or empty if the binary path is unknown.
func BundledIconPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), BundledIconName)
}

// truthy implements the boolean env vocabulary: true/1/yes/y/on in any
// case are true, everything else is false.
func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
