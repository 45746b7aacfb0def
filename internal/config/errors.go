package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates missing token key material or
	// non-positive token lifetimes.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
