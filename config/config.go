package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"go-currency-converter/domain"
)

// Prefix of every environment variable read by Load
const Prefix = "CONVERTER"

// Config for the converter executables
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	AssetsDir  string `envconfig:"ASSETS_DIR" default:"./assets"`

	PrimaryURL       string `envconfig:"PRIMARY_URL" default:"https://api.exchangerate.host"`
	PrimaryAccessKey string `envconfig:"PRIMARY_ACCESS_KEY"`
	SecondaryURL     string `envconfig:"SECONDARY_URL" default:"https://economia.awesomeapi.com.br"`

	// HTTPTimeout bounds each upstream request, zero means no explicit timeout
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`

	DefaultFrom domain.Currency `envconfig:"DEFAULT_FROM" default:"BRL"`
	DefaultTo   domain.Currency `envconfig:"DEFAULT_TO" default:"USD"`
}

// Load reads the environment, first seeding it from envFiles (or ./.env when none are given).
// Missing env files are not an error; variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects default selections outside the supported currencies.
func (c *Config) Validate() error {
	if !c.DefaultFrom.Valid() {
		return fmt.Errorf("default from currency %q: unsupported", c.DefaultFrom)
	}
	if !c.DefaultTo.Valid() {
		return fmt.Errorf("default to currency %q: unsupported", c.DefaultTo)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout %v: negative", c.HTTPTimeout)
	}
	return nil
}

// LevelOption maps LogLevel onto a go-kit level filter, info when unrecognized.
func (c *Config) LevelOption() level.Option {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	default:
		return level.AllowInfo()
	}
}
