// Package config loads and validates the axwarm configuration file.
//
// Configuration is optional: every setting has a repository default, and a
// missing file yields the default configuration. The file is TOML, resolved
// from ~/.config/axwarm/config.toml or ./axwarm.toml, and covers the
// built-in target fragment set, the helper-marker exclusion list, warm-up
// pacing, logging, and filesystem paths. Flags override config values at
// the command layer.
package config
