package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBPath     string
	ExportPath string
}

var (
	AppConfig Config
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	AppConfig = Config{
		Port:       getEnvOrDefault("PORT", "8080"),
		DBPath:     getEnvOrDefault("DB_PATH", "payroll.db"),
		ExportPath: getEnvOrDefault("EXPORT_PATH", "payroll_export.xlsx"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
