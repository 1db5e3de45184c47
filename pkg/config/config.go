package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	DatabaseURL     string
	StorageBucket   string
	StripeSecretKey string
	BaseURL         string
	SystemAccount   string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "3400"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3400"),
		SystemAccount:   getEnv("SYSTEM_ACCOUNT", "SafeHavenTeam"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
