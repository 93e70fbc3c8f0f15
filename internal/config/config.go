package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage modes. ModeDatabase serves the canonical contract against the
// SQL store; ModeLocal mirrors it against an on-device bbolt file with a
// locally issued token. The mode is an explicit configuration choice,
// never detected at runtime.
const (
	ModeDatabase = "database"
	ModeLocal    = "local"
)

const (
	defaultPort        = 5000
	defaultDatabaseURI = "portfolio.db"
	defaultLocalDBPath = "portfolio-local.db"
	defaultTokenTTL    = "24h"
)

type Config struct {
	Port        int
	DatabaseURI string
	TokenSecret string
	TokenTTL    time.Duration
	StorageMode string
	LocalDBPath string
}

// Load reads configuration from the environment and validates it.
// TOKEN_SECRET has no fallback on purpose: a baked-in signing key is not
// a deployment option.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURI: getEnv("DATABASE_URI", defaultDatabaseURI),
		TokenSecret: strings.TrimSpace(os.Getenv("TOKEN_SECRET")),
		StorageMode: strings.ToLower(getEnv("STORAGE_MODE", ModeDatabase)),
		LocalDBPath: getEnv("LOCAL_DB_PATH", defaultLocalDBPath),
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		cfg.Port = defaultPort
	} else {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return nil, fmt.Errorf("invalid PORT value %q", port)
		}
		cfg.Port = p
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", defaultTokenTTL))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL value %q", os.Getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageMode {
	case ModeDatabase:
		if c.TokenSecret == "" {
			return fmt.Errorf("TOKEN_SECRET must be set")
		}
		if strings.TrimSpace(c.DatabaseURI) == "" {
			return fmt.Errorf("DATABASE_URI must not be empty")
		}
	case ModeLocal:
		if strings.TrimSpace(c.LocalDBPath) == "" {
			return fmt.Errorf("LOCAL_DB_PATH must not be empty")
		}
	default:
		return fmt.Errorf("STORAGE_MODE must be one of: %s, %s", ModeDatabase, ModeLocal)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}
