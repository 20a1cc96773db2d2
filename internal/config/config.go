// Package config handles configuration loading for both services.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration shared by the two binaries.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	Port       string

	Environment string
}

// Load reads configuration from the environment. A .env file is applied
// first when present, matching local development setups.
func Load(defaultPort string) *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:      GetEnvRequired("DB_HOST"),
		DBPort:      GetEnvRequired("DB_PORT"),
		DBUser:      GetEnvRequired("DB_USER"),
		DBPassword:  GetEnvRequired("DB_PASSWORD"),
		DBName:      GetEnvRequired("DB_NAME"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "disable"),
		Port:        GetEnv("PORT", defaultPort),
		Environment: GetEnv("ENVIRONMENT", "development"),
	}
}

// GetEnv returns the variable's value or the default when unset.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the variable's value or exits the process.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("required environment variable %s is not set", key)
	}
	return value
}
