package config

import (
	"fmt"
	"os"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	TemplateDir    string
	StaticDir      string
	SessionBackend string
	RedisAddr      string
	RedisPassword  string
}

func Load() *Config {
	cfg := &Config{
		Port:           getenv("PORT", "3000"),
		MongoURI:       getenv("MONGO_URI", ""),
		MongoDB:        getenv("MONGO_DB", "inventory"),
		TemplateDir:    getenv("TEMPLATE_DIR", "templates"),
		StaticDir:      getenv("STATIC_DIR", "public"),
		SessionBackend: getenv("SESSION_BACKEND", "memory"),
		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
	}
	if cfg.MongoURI == "" {
		// Fall back to assembling the URI from split credentials.
		cfg.MongoURI = fmt.Sprintf("mongodb+srv://%s:%s@%s/",
			os.Getenv("DB_USERNAME"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_HOST"))
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
