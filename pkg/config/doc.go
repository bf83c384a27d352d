// Package config handles configuration management for repolist.
// Settings are layered from an embedded defaults file, the user config
// under XDG_CONFIG_HOME, a .repolist.toml at the repository root,
// REPOLIST_* environment variables, an explicit --config file and
// finally command-line overrides.
package config
