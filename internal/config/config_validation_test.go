package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "bucket without region", mutate: func(c *StructuredConfig) { c.Storage.Covers.Bucket = "covers" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too low", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 32 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero reset ttl", mutate: func(c *StructuredConfig) { c.App.ResetTokenTTL = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "no listeners", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "grpc only", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = ""; c.Server.GRPCAddress = "localhost:9090" }},
		{name: "zero reset limit", mutate: func(c *StructuredConfig) { c.Server.RateLimit.ResetMax = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "zero sweep interval", mutate: func(c *StructuredConfig) { c.Workers.ResetSweepInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
