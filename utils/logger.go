package utils

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"clinicbook/config"
)

// Logger is the process-wide zap logger. Handlers and services fetch it via
// GetLogger rather than holding their own instances.
var Logger *zap.Logger

// InitializeLogger builds the global logger: JSON output in production,
// colored console output in development. The level defaults to info in
// production and debug otherwise; LOG_LEVEL overrides it when it parses.
func InitializeLogger() {
	var cfg zap.Config
	level := zapcore.InfoLevel

	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level = zapcore.DebugLevel
	}
	if configured := config.AppConfig.LogLevel; configured != "" {
		if parsed, err := zapcore.ParseLevel(configured); err == nil {
			level = parsed
		}
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger, building it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
