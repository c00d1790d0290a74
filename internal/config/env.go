package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// InsecureDefaultSecret is only acceptable for local development.
const InsecureDefaultSecret = "insecure-dev-secret-change-this-in-production"

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JwtSecret  string
}

// LoadEnv reads an optional .env file and builds the configuration
// from environment variables with local-development defaults.
func LoadEnv() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "quiz_progress"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		JwtSecret:  getEnv("JWT_SECRET", InsecureDefaultSecret),
	}

	if cfg.JwtSecret == InsecureDefaultSecret {
		log.Println("WARNING: JWT_SECRET not set, using the insecure development default")
	}

	return cfg
}

func (c *Config) PostgresConnStr() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
