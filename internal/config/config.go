package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	SQLitePath   string
	DatabaseURL  string
	KafkaAddress string
	LogLevel     string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		Port:         getenv("PORT", "8080"),
		SQLitePath:   getenv("SQLITE_PATH", "data/products.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
