package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr           = ":8080"
	defaultDatabaseURL    = "museum.db"
	defaultJWTTTL         = "24h"
	defaultAssetsBaseDir  = "./uploads"
	defaultAssetsBaseURL  = "/static/uploads"
	defaultAppBaseURL     = "https://museum.example.com"
	defaultAdminTxTimeout = "20s"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	JWTTTL         time.Duration
	AssetsBaseDir  string
	AssetsBaseURL  string
	AppBaseURL     string
	AdminTxTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:          getenv("ADDR", defaultAddr),
		DatabaseURL:   getenv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AssetsBaseDir: getenv("ASSETS_BASE_DIR", defaultAssetsBaseDir),
		AssetsBaseURL: getenv("ASSETS_BASE_URL", defaultAssetsBaseURL),
		AppBaseURL:    getenv("APP_BASE_URL", defaultAppBaseURL),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, err
	}
	cfg.JWTTTL = ttl

	// The admin create path wraps a transaction that follows a network
	// upload, hence the generous default.
	txTimeout, err := time.ParseDuration(getenv("ADMIN_TX_TIMEOUT", defaultAdminTxTimeout))
	if err != nil {
		return nil, err
	}
	cfg.AdminTxTimeout = txTimeout

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
