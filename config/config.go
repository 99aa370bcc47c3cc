package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	CORSOrigins []string
	Database    DatabaseConfig
}

type DatabaseConfig struct {
	URL     string
	Name    string
	Timeout time.Duration
}

// Load reads .env when present and then the process environment.
// It reports whether a .env file was found.
func Load() (*Config, bool) {
	envFileLoaded := godotenv.Load() == nil

	return &Config{
		Port:        getEnv("PORT", "8000"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			Name:    os.Getenv("DATABASE_NAME"),
			Timeout: getDuration("DATABASE_TIMEOUT", 10*time.Second),
		},
	}, envFileLoaded
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
