// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Covers.Bucket != "" && cfg.Storage.Covers.Region == "" {
		return fmt.Errorf("%w: cover bucket requires a region", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listener address", ErrInvalidServerConfigs)
	}
	rl := cfg.Server.RateLimit
	if rl.ResetMax <= 0 || rl.ResetWindow <= 0 || rl.GlobalMax <= 0 || rl.GlobalWindow <= 0 {
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.ResetSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
