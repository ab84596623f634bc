package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Offers OffersConfig
	JWT    JWTConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type OffersConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type JWTConfig struct {
	SecretKey string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutSeconds, err := strconv.Atoi(getEnv("OFFERS_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, errors.New("invalid offers timeout")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Offer Decision Dashboard API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Offers: OffersConfig{
			BaseURL:        getEnv("OFFERS_BASE_URL", ""),
			TimeoutSeconds: timeoutSeconds,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
	}

	if cfg.Offers.BaseURL == "" {
		return nil, errors.New("missing offers base url")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
