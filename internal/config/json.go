package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		ResetTokenTTL Duration `json:"reset_token_ttl"`
		FrontendURL   string   `json:"frontend_url"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Covers struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			BaseEndpoint    string `json:"base_endpoint"`
			MaxSize         int64  `json:"max_size"`
		} `json:"covers,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		AllowedOrigin   string   `json:"allowed_origin"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		TrustProxy      bool     `json:"trust_proxy"`
		RateLimit       struct {
			ResetMax     int      `json:"reset_max"`
			ResetWindow  Duration `json:"reset_window"`
			GlobalMax    int      `json:"global_max"`
			GlobalWindow Duration `json:"global_window"`
		} `json:"rate_limit,omitempty"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			TenantID     string `json:"tenant_id"`
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			FromAddress  string `json:"from_address"`
			GraphBaseURL string `json:"graph_base_url"`
			AuthBaseURL  string `json:"auth_base_url"`
		} `json:"mail,omitempty"`
		Billing struct {
			SecretKey     string `json:"secret_key"`
			WebhookSecret string `json:"webhook_secret"`
			BaseURL       string `json:"base_url"`
		} `json:"billing,omitempty"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ResetSweepInterval Duration `json:"reset_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	rl := jsonCfg.Server.RateLimit
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:    jsonCfg.App.BcryptCost,
			ResetTokenTTL: time.Duration(jsonCfg.App.ResetTokenTTL),
			FrontendURL:   jsonCfg.App.FrontendURL,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Covers: Covers(jsonCfg.Storage.Covers),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigin:   jsonCfg.Server.AllowedOrigin,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			TrustProxy:      jsonCfg.Server.TrustProxy,
			RateLimit: RateLimit{
				ResetMax:     rl.ResetMax,
				ResetWindow:  time.Duration(rl.ResetWindow),
				GlobalMax:    rl.GlobalMax,
				GlobalWindow: time.Duration(rl.GlobalWindow),
			},
		},
		Adapter: Adapter{
			Mail:           Mail(jsonCfg.Adapter.Mail),
			Billing:        Billing(jsonCfg.Adapter.Billing),
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ResetSweepInterval: time.Duration(jsonCfg.Workers.ResetSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
