package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // optional; when set, command endpoints require it
	DatabaseURL string // optional; empty runs without persistence

	TrustedProxies []string // peers whose X-Forwarded-For is honored

	EnergyRegenInterval time.Duration
	SpinDuration        time.Duration
	TurboSpinDuration   time.Duration
	AutoSpinDelay       time.Duration
	TurboAutoSpinDelay  time.Duration
	ReelStagger         time.Duration
	TurboReelStagger    time.Duration

	HistorySize int
	HistoryTTL  time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "zodiac-spin"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	port, err := getEnvInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.EnergyRegenInterval, err = getEnvDuration("ENERGY_REGEN_INTERVAL", DefaultEnergyRegenInterval)
	if err != nil {
		return nil, err
	}
	cfg.SpinDuration, err = getEnvDuration("SPIN_DURATION", DefaultSpinDuration)
	if err != nil {
		return nil, err
	}
	cfg.TurboSpinDuration, err = getEnvDuration("TURBO_SPIN_DURATION", DefaultTurboSpinDuration)
	if err != nil {
		return nil, err
	}
	cfg.AutoSpinDelay, err = getEnvDuration("AUTOSPIN_DELAY", DefaultAutoSpinDelay)
	if err != nil {
		return nil, err
	}
	cfg.TurboAutoSpinDelay, err = getEnvDuration("TURBO_AUTOSPIN_DELAY", DefaultTurboAutoSpinDelay)
	if err != nil {
		return nil, err
	}
	cfg.ReelStagger, err = getEnvDuration("REEL_STAGGER", DefaultReelStagger)
	if err != nil {
		return nil, err
	}
	cfg.TurboReelStagger, err = getEnvDuration("TURBO_REEL_STAGGER", DefaultTurboReelStagger)
	if err != nil {
		return nil, err
	}

	cfg.HistorySize, err = getEnvInt("HISTORY_SIZE", DefaultHistorySize)
	if err != nil {
		return nil, err
	}
	cfg.HistoryTTL, err = getEnvDuration("HISTORY_TTL", DefaultHistoryTTL)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvDuration retrieves a duration environment variable ("90s", "1.5s", "800ms")
// or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}
