package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server settings
type Config struct {
	Port            int
	MaxPrincipal    float64
	MaxRate         float64
	MaxMonths       int
	MaxProofBytes   int64
	SubmissionDelay time.Duration
	RateLimit       float64
	RateBurst       int
	SchemesFile     string
	RedisAddr       string
	RedisDB         int
	OTELEndpoint    string
	OTELServiceName string
	OTELInsecure    bool
	OTELSampleRatio float64
	LogLevel        string
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 5e7),
		MaxRate:         getEnvFloat("MAX_RATE", 100),
		MaxMonths:       getEnvInt("MAX_MONTHS", 72),
		MaxProofBytes:   int64(getEnvInt("MAX_PROOF_BYTES", 5*1024*1024)),
		SubmissionDelay: getEnvDuration("SUBMISSION_DELAY", 1500*time.Millisecond),
		RateLimit:       getEnvFloat("RATE_LIMIT", 5),
		RateBurst:       getEnvInt("RATE_BURST", 10),
		SchemesFile:     getEnvString("SCHEMES_FILE", ""),
		RedisAddr:       getEnvString("REDIS_ADDR", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "microloan-server"),
		OTELInsecure:    getEnvBool("OTEL_INSECURE", false),
		OTELSampleRatio: getEnvFloat("OTEL_SAMPLE_RATIO", 1),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
