package config

// providerDefaultModels maps each provider to its default chat model.
var providerDefaultModels = map[ProviderType]string{
	ProviderGroq:      "llama-3.3-70b-versatile",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
	ProviderOllama:    "llama3",
}

// DefaultModel returns the default chat model for the given provider.
func DefaultModel(provider ProviderType) string {
	if m, ok := providerDefaultModels[provider]; ok {
		return m
	}
	return providerDefaultModels[ProviderGroq]
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderGroq,
		Model:             "llama-3.3-70b-versatile",
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    "text-embedding-3-small",
		Port:              8000,
		DataDir:           ".neuroscan",
		Classifier: ClassifierConfig{
			ModelName:  "braintumour",
			ImageSize:  150,
			PixelScale: 1.0,
		},
		Chat: ChatConfig{
			MaxHistory:        20,
			MaxSessions:       1024,
			SessionTTLMinutes: 60,
		},
	}
}
