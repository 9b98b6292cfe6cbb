package config

import "time"

type TranslationConfig struct {
	APIKey       string
	Model        string
	BaseURL      string
	Timeout      time.Duration
	CallInterval time.Duration
	MaxTargets   int
}

func DefaultTranslationConfig() *TranslationConfig {
	return &TranslationConfig{
		APIKey:       getEnvWithDefault("GEMINI_API_KEY", ""),
		Model:        getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		BaseURL:      getEnvWithDefault("GEMINI_BASE_URL", ""),
		Timeout:      getEnvDurationWithDefault("GEMINI_TIMEOUT", 10*time.Second),
		CallInterval: getEnvDurationWithDefault("TRANSLATION_CALL_INTERVAL", 200*time.Millisecond),
		MaxTargets:   getEnvIntWithDefault("TRANSLATION_MAX_TARGETS", 20),
	}
}
