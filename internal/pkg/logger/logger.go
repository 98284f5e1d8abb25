// Package logger builds the application's slog logger on top of zap.
package logger

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

const (
	// DevelopmentEnvironment selects the human-readable console encoder at debug level.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects JSON output at info level.
	ProductionEnvironment = "production"
)

// New returns a slog logger backed by a zap core configured for the environment,
// together with a flush function to call before the process exits.
//
// Unknown environments get the development configuration.
func New(environment string) (*slog.Logger, func(), error) {
	z, err := newZap(environment)
	if err != nil {
		return nil, nil, err
	}

	sync := func() { _ = z.Sync() }

	return slog.New(zapslog.NewHandler(z.Core())), sync, nil
}

// Nop returns a logger that discards everything. Tests use it for components
// that require a logger.
func Nop() *slog.Logger {
	return slog.New(zapslog.NewHandler(zap.NewNop().Core()))
}

func newZap(environment string) (*zap.Logger, error) {
	if environment == ProductionEnvironment {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
