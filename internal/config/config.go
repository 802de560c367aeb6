package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	DataDir     string
	NewsStorage string // "memory" or "file"
}

func New() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DataDir:     getEnv("DATA_DIR", "data"),
		NewsStorage: getEnv("NEWS_STORAGE", "memory"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsRelease reports whether the server runs in release mode. Error details
// are hidden from responses when it does.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func (c *Config) NewsDataFile() string {
	return filepath.Join(c.DataDir, "newsData.json")
}

func (c *Config) ContactDataFile() string {
	return filepath.Join(c.DataDir, "ContactData.json")
}

func (c *Config) RecruitDataFile() string {
	return filepath.Join(c.DataDir, "recruitData.json")
}

func (c *Config) GetCORSOrigins() []string {
	origins := getEnv("CORS_ORIGINS", "http://localhost:3000")
	return strings.Split(origins, ",")
}
