package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort        string          `envconfig:"HTTP_PORT"         default:":8080"`
	GrpcPort        string          `envconfig:"GRPC_PORT"         default:":50051"`
	LogLevel        string          `envconfig:"LOG_LEVEL"         default:"info"`
	LogFormat       string          `envconfig:"LOG_FORMAT"        default:"json"`
	SessionDBPath   string          `envconfig:"SESSION_DB_PATH"   default:"storefront.db"` // empty keeps the session in memory
	CatalogSeedFile string          `envconfig:"CATALOG_SEED_FILE"`
	CORSOrigins     []string        `envconfig:"CORS_ORIGINS"      default:"http://localhost:5173"`
	ShutdownTimeout time.Duration   `envconfig:"SHUTDOWN_TIMEOUT"  default:"5s"`
	PaymentLimit    decimal.Decimal `envconfig:"PAYMENT_LIMIT"     default:"0"`
}

var (
	config  Config
	loadErr error
	once    sync.Once
)

// Load reads the environment into a fresh Config. A .env file in the working
// directory is applied first when present; it never overrides variables that
// are already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("could not process configuration from environment: %w", err)
	}
	if c.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.PaymentLimit.IsNegative() {
		return nil, fmt.Errorf("PAYMENT_LIMIT cannot be negative, got %s", c.PaymentLimit)
	}
	return &c, nil
}

// LoadConfig loads the process-wide configuration once and logs the result.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	once.Do(func() {
		var c *Config
		c, loadErr = Load()
		if loadErr != nil {
			logger.Errorf("Failed to load configuration: %v", loadErr)
			return
		}
		config = *c

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s", config.HTTPPort, config.GrpcPort, config.LogLevel)
		if config.SessionDBPath != "" {
			logger.Infof("Configuration loaded: session stored in %s", config.SessionDBPath)
		} else {
			logger.Warn("Configuration loaded: SESSION_DB_PATH is empty, session will not survive a restart")
		}
		if config.CatalogSeedFile != "" {
			logger.Infof("Configuration loaded: catalog seed from %s", config.CatalogSeedFile)
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return &config, nil
}
