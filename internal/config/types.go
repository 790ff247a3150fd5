package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderGroq      ProviderType = "groq"
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level neuroscan configuration, corresponding to .neuroscan.yml.
type Config struct {
	Provider          ProviderType     `yaml:"provider" koanf:"provider"`
	Model             string           `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType     `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string           `yaml:"embedding_model" koanf:"embedding_model"`
	Port              int              `yaml:"port" koanf:"port"`
	DataDir           string           `yaml:"data_dir" koanf:"data_dir"`
	Classifier        ClassifierConfig `yaml:"classifier" koanf:"classifier"`
	Chat              ChatConfig       `yaml:"chat" koanf:"chat"`
}

// ClassifierConfig holds settings for the image classifier backend.
type ClassifierConfig struct {
	// Endpoint is the base URL of a TensorFlow Serving compatible REST API.
	// When empty the server starts without a classifier and /api/predict
	// reports the model as unavailable.
	Endpoint string `yaml:"endpoint" koanf:"endpoint"`
	// ModelName is the served model name used in the predict URL.
	ModelName string `yaml:"model_name" koanf:"model_name"`
	// ImageSize is the square input resolution the model was trained on.
	ImageSize int `yaml:"image_size" koanf:"image_size"`
	// PixelScale multiplies decoded pixel values before inference. The
	// reference model was trained on raw 0-255 values, so the default is 1.0.
	// Set 1/255 for models trained on normalized input.
	PixelScale float64 `yaml:"pixel_scale" koanf:"pixel_scale"`
}

// ChatConfig holds settings for the conversational assistant.
type ChatConfig struct {
	// MaxHistory bounds how many messages are retained and replayed per session.
	MaxHistory int `yaml:"max_history" koanf:"max_history"`
	// MaxSessions bounds how many sessions stay in memory before the least
	// recently used one is evicted.
	MaxSessions int `yaml:"max_sessions" koanf:"max_sessions"`
	// SessionTTLMinutes is how long an idle session survives between sweeps.
	SessionTTLMinutes int `yaml:"session_ttl_minutes" koanf:"session_ttl_minutes"`
}
