package config

import (
	"go.uber.org/zap"

	"github.com/linesmerrill/vehicle-registry-api/logging"
)

// setLogger builds the zap logger for the given environment
func setLogger(environment string) (*zap.Logger, error) {
	return logging.New(environment)
}
