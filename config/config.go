package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultInputFile = "image-urls.csv"
	DefaultOutputDir = "output"
	DefaultWorkers   = 1
)

type Config struct {
	InputFile string
	OutputDir string
	Workers   int

	ApiURL     string
	AccessKey  string
	SecretKey  string
	BucketName string
	Region     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		InputFile:  getEnv("INPUT_FILE", DefaultInputFile),
		OutputDir:  getEnv("OUTPUT_DIR", DefaultOutputDir),
		Workers:    getEnvInt("WORKERS", DefaultWorkers),
		ApiURL:     getEnv("API_URL", ""),
		AccessKey:  getEnv("ACCESS_KEY", ""),
		SecretKey:  getEnv("SECRET_KEY", ""),
		BucketName: getEnv("BUCKET_NAME", ""),
		Region:     getEnv("REGION", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", value)
		return defaultValue
	}
	return n
}
