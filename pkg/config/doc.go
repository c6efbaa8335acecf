// Package config loads and persists zr's global configuration.
//
// The configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. Embedded defaults (embedded/defaults.toml)
//  2. The user file, $XDG_CONFIG_HOME/zr/config.toml unless overridden
//  3. ZR_ environment variables (ZR_REPOSITORIES=url1,url2)
//
// The user file is created from the defaults the first time it is loaded.
// A Config value is built once at start-up and passed down explicitly.
package config
