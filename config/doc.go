// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, overridden by NAV_* environment
// variables and validated using struct tags. Missing values fall back to
// sensible defaults.
package config
