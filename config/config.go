package config

import (
	"agent-portfolio-app/models"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort           = "3008"
	DefaultIntakeEndpoint = "https://piglet-becoming-gar.ngrok-free.app"
	DefaultIntakeTagKey   = "goponsobdo"
	DefaultIntakeTagValue = "amijantechai"
)

// AppConfig holds the server configuration
type AppConfig struct {
	// Port the HTTP server listens on
	Port string

	// CatalogFile optionally replaces the built-in catalog (.yaml, .yml, .json, .jsonc)
	CatalogFile string

	// Intake is where the intake form sends the browser
	Intake models.IntakeTarget

	// EnableGzip compresses responses for clients that accept it
	EnableGzip bool

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
}

// LoadAppConfig loads configuration from environment variables
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Port:        getEnvString("PORT", DefaultPort),
		CatalogFile: getEnvString("CATALOG_FILE", ""),
		Intake: models.IntakeTarget{
			Endpoint: getEnvString("INTAKE_ENDPOINT", DefaultIntakeEndpoint),
			TagKey:   getEnvString("INTAKE_TAG_KEY", DefaultIntakeTagKey),
			TagValue: getEnvString("INTAKE_TAG_VALUE", DefaultIntakeTagValue),
		},
		EnableGzip:      getEnvBool("ENABLE_GZIP", true),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 5)) * time.Second,
	}
}

// Catalog returns the configured catalog: the built-in one, or the contents of CatalogFile
func (c *AppConfig) Catalog() (models.Catalog, error) {
	if c.CatalogFile == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(c.CatalogFile)
}

// getEnvString gets a string environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
