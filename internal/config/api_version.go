package config

// APIVersionConfig lists the path versions the API is served under.
// Deprecated maps a version to its sunset date.
type APIVersionConfig struct {
	Current    string
	Supported  []string
	Deprecated map[string]string
}

func DefaultAPIVersionConfig() *APIVersionConfig {
	return &APIVersionConfig{
		Current:   "v2",
		Supported: []string{"v1", "v2"},
		Deprecated: map[string]string{
			"v1": getEnvWithDefault("API_V1_SUNSET_DATE", "2025-06-01"),
		},
	}
}
