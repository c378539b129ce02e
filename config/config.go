package config

import (
	"log"
	"os"
	"strconv"
)

const (
	DefaultEnv                  = "development"
	DefaultPort                 = "8080"
	DefaultJWTSecret            = "changeme"
	DefaultAccessTokenExpiryMin = 60
)

type Config struct {
	Env             string
	Port            string
	DatabaseURL     string
	JWTSecret       string
	AccessExpiryMin int
}

func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", DefaultEnv),
		Port:            getEnv("PORT", DefaultPort),
		DatabaseURL:     mustGetEnv("DATABASE_URL"),
		JWTSecret:       getEnv("JWT_SECRET", DefaultJWTSecret),
		AccessExpiryMin: getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
