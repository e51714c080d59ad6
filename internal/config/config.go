package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/GustavoCaso/expensetracker/internal/logger"
)

type Config struct {
	File              string        `toml:"file"`
	Currency          string        `toml:"currency"`
	ThousandSeparator string        `toml:"thousand_separator"`
	DecimalSeparator  string        `toml:"decimal_separator"`
	NoColor           bool          `toml:"no_color"`
	Logger            logger.Config `toml:"logger"`
}

const (
	defaultFile             = "expenses.csv"
	defaultCurrency         = "$"
	defaultDecimalSeparator = "."
	defaultLogLevel         = logger.LevelInfo
	defaultLogFormat        = logger.FormatText
	defaultLogOutput        = "discard"
)

// LoadEnvFile exports the variables defined in path without overriding the
// ones already set. A missing file is ignored.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load env file %s: %w", path, err)
	}

	return nil
}

// Parse reads the TOML file at path, when it exists, and applies environment
// overrides and defaults on top.
func Parse(path string) (*Config, error) {
	conf := &Config{}

	if path != "" {
		_, err := toml.DecodeFile(path, conf)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to decode %s: %w", path, err)
		}
	}

	conf.parseEnv()
	conf.setDefaults()

	if err := conf.Logger.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseEnv() {
	if file := os.Getenv("EXPENSETRACKER_FILE"); file != "" {
		c.File = file
	}

	if currency := os.Getenv("EXPENSETRACKER_CURRENCY"); currency != "" {
		c.Currency = currency
	}

	if os.Getenv("EXPENSETRACKER_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}

	if level := os.Getenv("EXPENSETRACKER_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("EXPENSETRACKER_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("EXPENSETRACKER_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}
}

func (c *Config) setDefaults() {
	if c.File == "" {
		c.File = defaultFile
	}

	if c.Currency == "" {
		c.Currency = defaultCurrency
	}

	if c.DecimalSeparator == "" {
		c.DecimalSeparator = defaultDecimalSeparator
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}
}
