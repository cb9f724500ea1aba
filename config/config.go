package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort       string `envconfig:"HTTP_PORT"       default:":8080"`
	DatabaseURL    string `envconfig:"DATABASE_URL"`
	StoreBackend   string `envconfig:"STORE_BACKEND"   default:"postgres"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`
	LogLevel       string `envconfig:"LOG_LEVEL"       default:"info"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		if config.StoreBackend == "postgres" && config.DatabaseURL == "" {
			logger.Warn("DATABASE_URL is not set, falling back to the in-memory store")
			config.StoreBackend = "memory"
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, Store=%s, LogLevel=%s",
			config.HTTPPort, config.StoreBackend, config.LogLevel)
	})
	return &config
}
