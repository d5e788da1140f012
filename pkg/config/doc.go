// Package config handles configuration management for gradlepatch.
// It layers the embedded defaults, an optional TOML file, environment
// variables and command-line overrides with koanf, and turns the result
// into the injection directives used by the inject package.
package config
