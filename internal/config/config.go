package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Configuration errors reported before any network activity.
var (
	ErrMissingAPIKey    = errors.New("PINECONE_API_KEY is not set")
	ErrMissingIndexName = errors.New("PINECONE_INDEX_NAME is not configured")
)

// Defaults for the serverless index location, used only when creating the index.
const (
	DefaultCloud  = "aws"
	DefaultRegion = "us-east-1"
)

// Config holds the Pinecone connection configuration
type Config struct {
	APIKey    string
	IndexName string
	Cloud     string
	Region    string
}

// Load reads configuration from a .env file (if present) and the environment.
// The result is read-only for the rest of the process.
func Load() *Config {
	// A missing .env file is fine, the environment alone may be complete
	_ = godotenv.Load()

	return &Config{
		APIKey:    getenv("PINECONE_API_KEY", ""),
		IndexName: getenv("PINECONE_INDEX_NAME", ""),
		Cloud:     getenv("PINECONE_CLOUD", DefaultCloud),
		Region:    getenv("PINECONE_REGION", DefaultRegion),
	}
}

// Validate checks that the values required for any remote call are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if strings.TrimSpace(c.IndexName) == "" {
		return ErrMissingIndexName
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
