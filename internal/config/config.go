// Package config resolves the command-line tool's settings: an optional
// .env file, then SURVEYMODEL_* environment variables, then flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the CLI settings shared by every subcommand.
type Config struct {
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"warn"`
	Indent       string        `env:"INDENT" envDefault:"  "`
	OmitDefaults bool          `env:"OMIT_DEFAULTS" envDefault:"false"`
	Sanitize     bool          `env:"SANITIZE" envDefault:"false"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	AllowHTTP    bool          `env:"ALLOW_HTTP" envDefault:"true"`
}

const envPrefix = "SURVEYMODEL_"

// Load reads envFile when present and parses the environment. A missing
// file is not an error; an empty name skips it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return parse(env.Options{Prefix: envPrefix})
}

// FromMap parses settings from vars instead of the process environment.
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: %sLOG_LEVEL: %w", envPrefix, err))
	}
	if strings.Trim(c.Indent, " \t") != "" {
		errs = append(errs, fmt.Errorf("config: %sINDENT must contain only spaces or tabs, got %q", envPrefix, c.Indent))
	}
	if c.HTTPTimeout < 0 {
		errs = append(errs, fmt.Errorf("config: %sHTTP_TIMEOUT must not be negative, got %s", envPrefix, c.HTTPTimeout))
	}
	return errors.Join(errs...)
}

// Logger builds a production zap logger at the configured level writing to
// stderr, so command output on stdout stays parseable.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}
