package models

// Config represents the application configuration, loaded once at startup
// and treated as read-only afterwards
type Config struct {
	App    AppConfig
	Server ServerConfig
	AI     AIConfig
	NATS   NATSConfig
	Logger LoggerConfig
}

// AppConfig represents application metadata configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// AIConfig represents AI backend configuration.
// Exactly one backend is active per deployment, selected by Backend.
type AIConfig struct {
	Backend   string // "ollama", "openai" or "gemini"
	MaxTokens int
	Ollama    OllamaConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
}

// OllamaConfig represents local inference server configuration
type OllamaConfig struct {
	BaseURL        string
	Model          string
	RequestTimeout float64 // seconds
}

// OpenAIConfig represents hosted chat-completion API configuration
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// GeminiConfig represents hosted generative API configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// NATSConfig represents NATS configuration.
// An empty URL disables analysis event publishing.
type NATSConfig struct {
	URL string
}

// LoggerConfig represents logging configuration
type LoggerConfig struct {
	Level string
}
