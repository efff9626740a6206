// Package config loads, validates, and defaults the slicer TOML configuration.
//
// The configuration file is optional: when neither ~/.config/slicer/config.toml
// nor a project-local slicer.toml exists, repository defaults apply. Path
// fields are tilde-expanded and made absolute during normalization so the rest
// of the codebase never handles relative or home-anchored paths.
package config
