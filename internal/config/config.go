package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisURL        string
	NewsAPIKey      string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	LLMProvider     string
	FrontendURL     string
	FetchHourUTC    int
	FetchMinuteUTC  int
	RunOnce         bool
}

// Load reads configuration from the environment. Call godotenv.Load first
// so a local .env file is picked up.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		NewsAPIKey:      os.Getenv("NEWSAPI_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		FetchHourUTC:    getEnvInt("FETCH_HOUR_UTC", 6),
		FetchMinuteUTC:  getEnvInt("FETCH_MINUTE_UTC", 0),
		RunOnce:         getEnvBool("RUN_ONCE", false),
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
