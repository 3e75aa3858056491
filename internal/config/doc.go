// Package config loads, normalizes, and validates wordcounter configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type gathers the analysis
// language, top-N defaults, export location, interactive session settings, and
// logging knobs so the CLI can resolve everything in one pass.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, expanded paths, and clear validation errors.
package config
