package config

import "time"

// Defaults applied after env, flags and the JSON file are merged.
const (
	DefaultTokenIssuer        = "go-story-nook"
	DefaultTokenDuration      = 24 * time.Hour
	DefaultBcryptCost         = 10
	DefaultResetTokenTTL      = time.Hour
	DefaultFrontendURL        = "http://localhost:3000"
	DefaultVersion            = "dev"
	DefaultHTTPAddress        = "localhost:8080"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultCoverMaxSize       = 5 << 20
	DefaultResetRateMax       = 5
	DefaultGlobalRateMax      = 100
	DefaultRateWindow         = 15 * time.Minute
	DefaultMailFromAddress    = "support@storynook.be"
	DefaultGraphBaseURL       = "https://graph.microsoft.com/v1.0"
	DefaultAuthBaseURL        = "https://login.microsoftonline.com"
	DefaultBillingBaseURL     = "https://api.stripe.com"
	DefaultAdapterTimeout     = 10 * time.Second
	DefaultResetSweepInterval = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			ResetTokenTTL: DefaultResetTokenTTL,
			FrontendURL:   DefaultFrontendURL,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			Covers: Covers{MaxSize: DefaultCoverMaxSize},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			AllowedOrigin:   DefaultFrontendURL,
			ShutdownTimeout: DefaultShutdownTimeout,
			RateLimit: RateLimit{
				ResetMax:     DefaultResetRateMax,
				ResetWindow:  DefaultRateWindow,
				GlobalMax:    DefaultGlobalRateMax,
				GlobalWindow: DefaultRateWindow,
			},
		},
		Adapter: Adapter{
			Mail: Mail{
				FromAddress:  DefaultMailFromAddress,
				GraphBaseURL: DefaultGraphBaseURL,
				AuthBaseURL:  DefaultAuthBaseURL,
			},
			Billing:        Billing{BaseURL: DefaultBillingBaseURL},
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{ResetSweepInterval: DefaultResetSweepInterval},
	}
}
