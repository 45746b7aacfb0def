// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpenko

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing configuration here is programmer/operator error, so it aborts
// startup rather than surfacing later inside business logic.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.AccessPrivateKey == "" || cfg.Auth.AccessPublicKey == "" ||
		cfg.Auth.RefreshPrivateKey == "" || cfg.Auth.RefreshPublicKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
