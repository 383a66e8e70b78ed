package limiter

import (
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

// Limiters are shared by the HTTP middleware and the cleanup workers.
type Limiters struct {
	// Reset guards the forgot/reset password endpoints.
	Reset *FixedWindow

	// Global guards every route.
	Global *TokenBucket
}

func NewLimiters(cfg config.RateLimit, clock utils.Clock) *Limiters {
	return &Limiters{
		Reset:  NewFixedWindow(cfg.ResetMax, cfg.ResetWindow, clock),
		Global: NewTokenBucket(cfg.GlobalMax, cfg.GlobalWindow, clock),
	}
}
