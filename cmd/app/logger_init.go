package main

import (
	"github.com/zodiacgames/ZodiacSpin_Go/internal/config"
	"github.com/zodiacgames/ZodiacSpin_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only in dev builds
	addSource := cfg.Environment == logger.EnvironmentDev

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
