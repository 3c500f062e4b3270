package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultContactEmail is the recipient of every lead mailto link
	DefaultContactEmail = "retailnexa.ai@gmail.com"
	// DefaultLinkedInURL is the company page linked from the footer
	DefaultLinkedInURL = "https://www.linkedin.com/company/retailnexa"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	StaticDir   string
	LogLevel    string
	// Lead form
	ContactEmail  string
	LinkedInURL   string
	LeadRateLimit int // Submissions per minute per IP
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AppURL:        strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		StaticDir:     getEnv("STATIC_DIR", "static"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ContactEmail:  getEnv("CONTACT_EMAIL", DefaultContactEmail),
		LinkedInURL:   getEnv("LINKEDIN_URL", DefaultLinkedInURL),
		LeadRateLimit: getEnvInt("LEAD_RATE_LIMIT", 10),
	}
}

// IsProduction reports whether secure cookies and JSON logs should be used
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
