package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/vehicle-registry-api/models"
)

// Config holds the project config values
type Config struct {
	Port             string        `yaml:"port"             env:"PORT"               env-default:"3030"`
	BaseURL          string        `yaml:"base_url"         env:"BASE_URL"`
	Environment      string        `yaml:"environment"      env:"ENVIRONMENT"        env-default:"development"`
	BcryptCost       int           `yaml:"bcrypt_cost"      env:"BCRYPT_COST"        env-default:"10"`
	RequestTimeout   time.Duration `yaml:"request_timeout"  env:"REQUEST_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"   env-default:"10s"`
	MetricsWindow    time.Duration `yaml:"metrics_window"   env:"METRICS_WINDOW"     env-default:"1h"`
	MaxTraces        int           `yaml:"max_traces"       env:"METRICS_MAX_TRACES" env-default:"1000"`
	InventoryLogSpec string        `yaml:"inventory_log"    env:"INVENTORY_LOG_SPEC" env-default:"@every 15m"`
}

// New loads the config and sets up the global zap logger. It exits the
// process when the configuration is invalid.
func New() *Config {
	conf, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := setLogger(conf.Environment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = zap.ReplaceGlobals(logger)

	return conf
}

// Load reads configuration from environment variables, layered over the YAML
// file named by CONFIG_PATH when that variable is set.
func Load() (*Config, error) {
	var conf Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &conf); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &conf, nil
}

// Validate checks values cleanenv cannot check on its own
func (c *Config) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.MetricsWindow <= 0 {
		return fmt.Errorf("METRICS_WINDOW must be positive, got %s", c.MetricsWindow)
	}
	if c.MaxTraces <= 0 {
		return fmt.Errorf("METRICS_MAX_TRACES must be positive, got %d", c.MaxTraces)
	}
	return nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, error code, status code and err
func ErrorStatus(message, code string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message,
		"code", code,
		"status", httpStatusCode,
		"error", err,
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Message: message, Code: code})
	w.Write(b)
}
