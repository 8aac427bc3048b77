package utils

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"clinicbook/config"
)

func TestInitializeLoggerHonorsLogLevel(t *testing.T) {
	defer func() {
		config.AppConfig.LogLevel = ""
		Logger = nil
	}()

	config.AppConfig.LogLevel = "warn"
	InitializeLogger()

	core := Logger.Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled when LOG_LEVEL=warn")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled when LOG_LEVEL=warn")
	}

	// An unparseable level keeps the environment default.
	config.AppConfig.LogLevel = "shouting"
	InitializeLogger()
	if !Logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("development default should remain debug when LOG_LEVEL is unparseable")
	}
}
