// Package config loads and validates the TOML configuration for mkvswap.
//
// Configuration resolution order: an explicit --config path, then
// ~/.config/mkvswap/config.toml, then built-in defaults. All path values
// support ~ expansion and are normalized to absolute paths at load time.
package config
