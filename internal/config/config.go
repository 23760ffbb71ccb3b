package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Seed     SeedConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Addr string
}

type SeedConfig struct {
	// AllowFallback разрешает стартовать на встроенном демо-наборе,
	// когда БД внешней системы недоступна
	AllowFallback bool
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "scheduler"),
			Password: getEnv("DB_PASSWORD", "scheduler"),
			DBName:   getEnv("DB_NAME", "crew_scheduler"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", ":8080"),
		},
		Seed: SeedConfig{
			AllowFallback: getEnv("SEED_FALLBACK", "true") == "true",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
