package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	JWTSecret   string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBPath:      get("DB_PATH", "petrolog.db"),
		JWTSecret:   get("JWT_SECRET", "dev-secret-change-me"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
	}
	log.Printf("[cfg] port=%s db=%s llm=%t", cfg.Port, cfg.DBPath, cfg.LLMEndpoint != "")
	return cfg
}
