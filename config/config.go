/*
 * This file is part of Go Charge Analysis.
 *
 * Go Charge Analysis is free software: you can redistribute it and/or modify it under
 * the terms of the GNU General Public License as published by the Free Software Foundation,
 * either version 2 of the License, or (at your option) any later version.
 * Go Charge Analysis is distributed in the hope that it will be useful, but WITHOUT ANY
 * WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A
 * PARTICULAR PURPOSE. See the GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with Go Charge Analysis. If not, see <https://www.gnu.org/licenses/>.
 */

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/millikan-lab/gochargeanalysis/constants"
	"github.com/millikan-lab/gochargeanalysis/utilities"
)

// EnvPrefix starts the name of every environment variable consulted by Load.
const EnvPrefix = "CHARGE"

type Config struct {
	DefaultDataFile string `yaml:"default_data_file" envconfig:"DEFAULT_DATA_FILE" validate:"required"`
	Unit            string `yaml:"unit" envconfig:"UNIT" validate:"required"`
	KeepGoing       bool   `yaml:"keep_going" envconfig:"KEEP_GOING"`
	PromptAttempts  int    `yaml:"prompt_attempts" envconfig:"PROMPT_ATTEMPTS" validate:"gt=0"`
	LogLevel        string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Source          string `yaml:"-" ignored:"true" validate:"-"`
}

func Default() *Config {
	return &Config{
		DefaultDataFile: constants.DefaultDataFile,
		Unit:            constants.DefaultUnit,
		KeepGoing:       constants.DefaultKeepGoing,
		PromptAttempts:  constants.DefaultPromptAttempts,
		LogLevel:        constants.DefaultLogLevel,
		Source:          "defaults",
	}
}

// Load resolves the effective configuration. Values from the file at path
// override the defaults, and CHARGE_* environment variables override both.
// An empty path means no file is consulted.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf(
				"could not read the configuration file %s: %w",
				path,
				err,
			)
		}
		if err := yaml.Unmarshal(contents, c); err != nil {
			return nil, fmt.Errorf(
				"could not parse the configuration file %s: %w",
				path,
				err,
			)
		}
		c.Source = path
	}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return nil, fmt.Errorf(
			"could not read configuration from the environment: %w",
			err,
		)
	}
	if err := c.IsValid(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) IsValid() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf(
			"configuration from %s is invalid: %w",
			utilities.Conditional(len(c.Source) != 0, c.Source, "Missing"),
			err,
		)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Default data file: %s\nUnit: %s\nKeep going: %v\nPrompt attempts: %d\nLog level: %s\nSource: %s\n",
		c.DefaultDataFile,
		c.Unit,
		c.KeepGoing,
		c.PromptAttempts,
		c.LogLevel,
		c.Source,
	)
}

// SlogLevel translates the configured log level into a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
