package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	DatabaseURL string

	OpenRouterAPIURL  string
	OpenRouterAPIKey  string
	OpenRouterModel   string
	OpenRouterAppName string
	OpenRouterAppURL  string

	GeminiAPIKey  string
	GeminiModelID string

	ClassifierTimeout   time.Duration
	ClassifierMaxTokens int

	SpellAPIURL  string
	SpellTimeout time.Duration

	// The two session lifetimes are intentionally independent: the locations
	// slot and context flags expire quickly, the conversation transcript
	// survives much longer.
	LocationContextTTL time.Duration
	ConversationTTL    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		OpenRouterAPIURL:  getEnv("OPENROUTER_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "deepseek/deepseek-chat-v3.1:free"),
		OpenRouterAppName: getEnv("OPENROUTER_APP_NAME", "ALMAssist-Chatbot"),
		OpenRouterAppURL:  getEnv("OPENROUTER_APP_URL", "http://localhost:8080"),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),

		ClassifierTimeout:   getEnvAsDuration("CLASSIFIER_TIMEOUT", 20*time.Second),
		ClassifierMaxTokens: getEnvAsInt("CLASSIFIER_MAX_TOKENS", 100),

		SpellAPIURL:  getEnv("SPELL_API_URL", ""),
		SpellTimeout: getEnvAsDuration("SPELL_TIMEOUT", 3*time.Second),

		LocationContextTTL: getEnvAsDuration("LOCATION_CONTEXT_TTL", 10*time.Minute),
		ConversationTTL:    getEnvAsDuration("CONVERSATION_TTL", 24*time.Hour),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
