package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	// Upstream commerce platform (catalog source of truth).
	CommerceAPIURL string
	CommerceToken  string

	// Upstream admin API for order history. Optional: when the token is
	// empty the order service serves fixture data instead.
	AdminAPIURL string
	AdminToken  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		CommerceAPIURL: os.Getenv("COMMERCE_API_URL"),
		CommerceToken:  os.Getenv("COMMERCE_API_TOKEN"),
		AdminAPIURL:    os.Getenv("ADMIN_API_URL"),
		AdminToken:     os.Getenv("ADMIN_API_TOKEN"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
