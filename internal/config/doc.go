// Package config loads, normalizes, and validates organizer configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and exposes the operator-editable category
// table. Always obtain settings through this package so downstream code
// receives sanitized absolute paths and clear validation errors.
package config
