package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// ErrNotConfigured means no wallpaper pack has been selected yet.
var ErrNotConfigured = errors.New("no wallpaper pack selected")

// Config is the user configuration for daywall.
type Config struct {
	Longitude float64 `toml:"longitude" envconfig:"LONGITUDE" validate:"gte=-180,lte=180"`
	Latitude  float64 `toml:"latitude" envconfig:"LATITUDE" validate:"gte=-90,lte=90"`
	Pack      string  `toml:"pack" envconfig:"PACK" validate:"excludesall=/\\"`
	PacksDir  string  `toml:"packs_dir" envconfig:"PACKS_DIR"`

	PollSeconds int    `toml:"poll_seconds" envconfig:"POLL_SECONDS" validate:"gte=1,lte=3600"`
	LogLevel    string `toml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile     string `toml:"log_file" envconfig:"LOG_FILE"`

	Desktop              string `toml:"desktop" envconfig:"DESKTOP"`
	WallpaperCommand     string `toml:"wallpaper_command" envconfig:"WALLPAPER_COMMAND"`
	ContinueOnApplyError bool   `toml:"continue_on_apply_error" envconfig:"CONTINUE_ON_APPLY_ERROR"`
	// ReapplyEveryTick hands the selected image to the desktop on every
	// poll, even when it is already the wallpaper.
	ReapplyEveryTick bool `toml:"reapply_every_tick" envconfig:"REAPPLY_EVERY_TICK"`
}

const (
	envPrefix = "daywall"

	defaultConfigPath  = "~/.config/daywall/config.toml"
	defaultPacksDir    = "~/.local/share/daywall/packs"
	defaultLogFile     = "~/.local/state/daywall/daywall.log"
	defaultPollSeconds = 30
	defaultLogLevel    = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PacksDir:    mustExpand(defaultPacksDir),
		PollSeconds: defaultPollSeconds,
		LogLevel:    defaultLogLevel,
		LogFile:     mustExpand(defaultLogFile),

		ReapplyEveryTick: true,
	}
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

// Load reads the config at path (or the default location) from fs, applies
// DAYWALL_* environment overrides and validates the result. A missing file is
// not an error.
func Load(fs afero.Fs, path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	data, err := afero.ReadFile(fs, resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	cfg.normalize()

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Pack = strings.TrimSpace(c.Pack)
	c.Desktop = strings.TrimSpace(c.Desktop)
	c.WallpaperCommand = strings.TrimSpace(c.WallpaperCommand)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.PollSeconds == 0 {
		c.PollSeconds = defaultPollSeconds
	}
	if strings.TrimSpace(c.PacksDir) == "" {
		c.PacksDir = defaultPacksDir
	}
	c.PacksDir = mustExpand(c.PacksDir)
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)
}

// Configured reports whether a pack has been selected.
func (c Config) Configured() bool {
	return c.Pack != ""
}

// RequirePack returns ErrNotConfigured when no pack is selected.
func (c Config) RequirePack() error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	return nil
}

// PollInterval returns the scheduler tick.
func (c Config) PollInterval() time.Duration {
	if c.PollSeconds <= 0 {
		return defaultPollSeconds * time.Second
	}
	return time.Duration(c.PollSeconds) * time.Second
}

// EnsureDirs creates the config, packs and log directories.
func EnsureDirs(fs afero.Fs, configPath string, cfg Config) error {
	resolved, err := resolvePath(configPath)
	if err != nil {
		return err
	}
	dirs := []string{filepath.Dir(resolved), cfg.PacksDir, filepath.Dir(cfg.LogFile)}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Save writes cfg as TOML, creating the parent directory. An existing file is
// left alone unless overwrite is set.
func Save(fs afero.Fs, path string, cfg Config, overwrite bool) (string, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return "", err
	}
	if !overwrite {
		if exists, _ := afero.Exists(fs, resolved); exists {
			return resolved, fmt.Errorf("config %s already exists", resolved)
		}
	}
	if err := fs.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	if err := afero.WriteFile(fs, resolved, data, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return resolved, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
