// Package config loads the daywall user configuration.
//
// # Resolution order
//
//  1. Built-in defaults (Default)
//  2. The TOML file at the given path, or ~/.config/daywall/config.toml
//  3. DAYWALL_* environment variables (envconfig), e.g. DAYWALL_PACK
//
// A missing config file is not an error. The result is validated with
// go-playground/validator: latitude within [-90, 90], longitude within
// [-180, 180], a positive poll interval and a known log level.
//
// # TOML format
//
//	longitude = 15.8174
//	latitude = 45.7142
//	pack = "mojave"
//	packs_dir = "~/.local/share/daywall/packs"
//	poll_seconds = 30
//	log_level = "info"
//	log_file = "~/.local/state/daywall/daywall.log"
//	desktop = ""              # override XDG_CURRENT_DESKTOP
//	wallpaper_command = ""    # e.g. "swww img %s"
//	continue_on_apply_error = false
//
// # Not configured
//
// An empty pack is a recognised state, not a failure. Callers check
// Configured or RequirePack (ErrNotConfigured) before loading a pack, and
// tell the user how to pick one.
//
// # Directories
//
// EnsureDirs creates the config, packs and log directories on an afero
// filesystem so tests can run against afero.NewMemMapFs.
package config
