package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Prefix for every environment variable, e.g. SLEEPLOG_FILE.
const Prefix = "SLEEPLOG"

// Config is read only from SLEEPLOG_* variables. Keys come from split_words
// field names; an explicit envconfig tag would make envconfig fall back to the
// bare name (FILE, WINDOW) when the prefixed one is unset.
type Config struct {
	AppEnv   string `split_words:"true" default:"production"`
	LogLevel string `split_words:"true" default:"warn"`
	File     string `default:"sleep_log.json"`
	Window   int    `default:"7"`
	HTTPAddr string `split_words:"true" default:"127.0.0.1:8088"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.AppEnv != "development" && c.AppEnv != "production" {
		return errors.New("config: APP_ENV must be one of: development, production")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: invalid LOG_LEVEL %q", c.LogLevel)
	}
	if c.File == "" {
		return errors.New("config: FILE must not be empty")
	}
	if c.Window <= 0 {
		return errors.New("config: WINDOW must be positive")
	}
	return nil
}
