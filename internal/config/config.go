// Package config loads the settings of the fixedcalc command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/fixed"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the fixedcalc settings.
type Config struct {
	// Layout is the name of the fixed-point layout, such as "16.16".
	Layout string `mapstructure:"layout" yaml:"layout"`
	// Format is a format specification, see fixed.ParseSpec.
	Format string `mapstructure:"format" yaml:"format"`
	// Workers limits the number of expressions evaluated at once.
	// 0 means the number of CPUs.
	Workers int `mapstructure:"workers" yaml:"workers"`

	configPath string
}

// ConfigPath returns the path of the configuration file that was read,
// or an empty string if none was found.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Spec returns the parsed format specification.
func (c *Config) Spec() (fixed.Spec, error) {
	return fixed.ParseSpec(c.Format)
}

// Keys lists the configuration keys that can be set by flags.
var Keys = []string{"layout", "format", "workers"}

// LoadConfig loads the configuration in priority order:
//  1. Default values
//  2. Configuration file (fixedcalc.yaml in the working directory, or path)
//  3. Environment variables (FIXEDCALC_ prefix)
//  4. Flags that were set on the command line
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Configuration file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fixedcalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 3. Environment
	v.SetEnvPrefix("FIXEDCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Flags
	if flags != nil {
		for _, key := range Keys {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", key, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = v.ConfigFileUsed()

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// setDefaults sets the default values of all keys.
func setDefaults(v *viper.Viper) {
	v.SetDefault("layout", "16.16")
	v.SetDefault("format", "")
	v.SetDefault("workers", 0)
}

// ValidateConfig checks the values that do not depend on other packages.
func ValidateConfig(c *Config) error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.Spec(); err != nil {
		return fmt.Errorf("invalid format %q: %w", c.Format, err)
	}
	return nil
}
