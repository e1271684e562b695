package config

import (
	"log"
	"os"
	"strconv"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads configuration from the environment. When running locally
// a .env file is loaded first so developers do not have to export variables.
func InitConfig() *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load()
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ai-microservice")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "127.0.0.1")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// AI backend config
	configs.AI.Backend = GetEnv("AI_BACKEND", "ollama")
	configs.AI.MaxTokens = GetEnvAsInt("AI_MAX_TOKENS", 800)
	configs.AI.Ollama.BaseURL = GetEnv("OLLAMA_BASE_URL", "http://127.0.0.1:11434")
	configs.AI.Ollama.Model = GetEnv("OLLAMA_MODEL", "gemma3:1b")
	configs.AI.Ollama.RequestTimeout = GetEnvAsFloat("OLLAMA_REQUEST_TIMEOUT", 300.0)
	configs.AI.OpenAI.APIKey = GetEnv("OPENAI_API_KEY", "")
	configs.AI.OpenAI.Model = GetEnv("OPENAI_MODEL", "gpt-4o-mini")
	configs.AI.Gemini.APIKey = GetEnv("GEMINI_API_KEY", "")
	configs.AI.Gemini.Model = GetEnv("GEMINI_MODEL", "gemini-2.0-flash")

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
