// Package config loads, normalizes, and validates subburn configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SUBBURN_LOG_LEVEL environment
// override. Plugin input defaults configured here are layered beneath the
// inputs of each job so operators can pin site-wide choices.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
