package config

import (
	"errors"
	"time"
)

type Config struct {
	ServerPort            int           `json:"server_port"`
	JWTSecretKey          string        `json:"jwt_secret_key"`
	IDTokenTTL            time.Duration `json:"id_token_ttl"`
	ExchangeTokenTTL      time.Duration `json:"exchange_token_ttl"`
	DefaultRateLimit      int           `json:"default_rate_limit"`
	GlobalRateLimit       int           `json:"global_rate_limit"`
	BootstrapAdminEmail   string        `json:"bootstrap_admin_email"`
	DefaultBrandID        string        `json:"default_brand_id"`
	ExternalCallTimeout   time.Duration `json:"external_call_timeout"`
	ActionLogDefaultLimit int           `json:"action_log_default_limit"`
	ActionLogMaxLimit     int           `json:"action_log_max_limit"`
	MaxRequestBytes       int64         `json:"max_request_bytes"`
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:            getEnvIntWithDefault("SERVER_PORT", 10000),
		JWTSecretKey:          getEnvWithDefault("JWT_SECRET_KEY", ""),
		IDTokenTTL:            getEnvDurationWithDefault("ID_TOKEN_TTL", 24*time.Hour),
		ExchangeTokenTTL:      getEnvDurationWithDefault("EXCHANGE_TOKEN_TTL", 5*time.Minute),
		DefaultRateLimit:      getEnvIntWithDefault("DEFAULT_RATE_LIMIT", 600),    // per principal per minute
		GlobalRateLimit:       getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000),   // per IP per minute
		BootstrapAdminEmail:   getEnvWithDefault("BOOTSTRAP_ADMIN_EMAIL", "vestaluminasystem@gmail.com"),
		DefaultBrandID:        getEnvWithDefault("DEFAULT_BRAND_ID", "vesta-lumina"),
		ExternalCallTimeout:   getEnvDurationWithDefault("EXTERNAL_CALL_TIMEOUT", 10*time.Second),
		ActionLogDefaultLimit: getEnvIntWithDefault("ACTION_LOG_DEFAULT_LIMIT", 50),
		ActionLogMaxLimit:     getEnvIntWithDefault("ACTION_LOG_MAX_LIMIT", 500),
		MaxRequestBytes:       int64(getEnvIntWithDefault("MAX_REQUEST_BYTES", 1<<20)),
	}

	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}

	return cfg, nil
}
