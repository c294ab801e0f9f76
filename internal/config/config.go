package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultMaxLoadingGalleries = 5
	defaultMaxURLsPerGallery   = 50
	defaultFetchTimeout        = 15 * time.Second
	defaultMaxImageBytes       = 10 << 20
)

type Config struct {
	LogMode             string
	ServerPort          string
	MaxLoadingGalleries int
	MaxURLsPerGallery   int
	FetchTimeout        time.Duration
	MaxImageBytes       int64
	ImageURLs           []string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
	})
	if err != nil {
		return err
	}

	return nil
}

func stringToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func positiveInt(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	n := stringToInt(raw)
	if n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}

func positiveDuration(key string, def time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("load configuration file: empty path")
	}

	err := godotenv.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	err = validateEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxGalleries, err := positiveInt("MAX_ACTIVE_GALLERIES", defaultMaxLoadingGalleries)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxURLs, err := positiveInt("MAX_URLS_PER_GALLERY", defaultMaxURLsPerGallery)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxBytes, err := positiveInt("MAX_IMAGE_BYTES", defaultMaxImageBytes)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	timeout, err := positiveDuration("FETCH_TIMEOUT", defaultFetchTimeout)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return &Config{
		LogMode:             os.Getenv("LOG_MODE"),
		ServerPort:          os.Getenv("SERVER_PORT"),
		MaxLoadingGalleries: maxGalleries,
		MaxURLsPerGallery:   maxURLs,
		FetchTimeout:        timeout,
		MaxImageBytes:       int64(maxBytes),
		ImageURLs:           splitList(os.Getenv("IMAGE_URLS")),
	}, nil
}
