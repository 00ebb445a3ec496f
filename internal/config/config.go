package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/X86-Point5/input-handler/input"
	"github.com/X86-Point5/input-handler/logger"
)

// FileName is the config file looked up in the working directory.
const FileName = "inputhandler.yml"

// EnvPrefix prefixes environment overrides, e.g. INPUTHANDLER_INTEGER_MAX.
const EnvPrefix = "INPUTHANDLER"

const (
	ThemeColor = "color"
	ThemePlain = "plain"

	EchoAuto   = "auto"
	EchoAlways = "always"
	EchoNever  = "never"
)

// Config holds the CLI defaults for every prompt.
type Config struct {
	Theme    string        `yaml:"theme" mapstructure:"theme"`
	Echo     string        `yaml:"echo" mapstructure:"echo"`
	LogLevel string        `yaml:"log_level" mapstructure:"log_level"`
	Integer  IntegerConfig `yaml:"integer" mapstructure:"integer"`
	Float    FloatConfig   `yaml:"float" mapstructure:"float"`
	Char     CharConfig    `yaml:"char" mapstructure:"char"`
	String   StringConfig  `yaml:"string" mapstructure:"string"`
}

// IntegerConfig holds the integer prompt bounds
type IntegerConfig struct {
	Min       int  `yaml:"min" mapstructure:"min"`
	Max       int  `yaml:"max" mapstructure:"max"`
	Exclusive bool `yaml:"exclusive" mapstructure:"exclusive"`
}

// FloatConfig holds the float prompt bounds
type FloatConfig struct {
	Min       float64 `yaml:"min" mapstructure:"min"`
	Max       float64 `yaml:"max" mapstructure:"max"`
	Exclusive bool    `yaml:"exclusive" mapstructure:"exclusive"`
}

// CharConfig holds the character prompt restrictions
type CharConfig struct {
	Allowed  string `yaml:"allowed" mapstructure:"allowed"`
	FoldCase bool   `yaml:"fold_case" mapstructure:"fold_case"`
}

// StringConfig holds the string prompt exclusion list
type StringConfig struct {
	Banned       []string `yaml:"banned" mapstructure:"banned"`
	ErrorMessage string   `yaml:"error_message" mapstructure:"error_message"`
}

// Default returns the built-in configuration, matching the library defaults.
func Default() *Config {
	return &Config{
		Theme:    ThemeColor,
		Echo:     EchoAuto,
		LogLevel: "info",
		Integer: IntegerConfig{
			Min: input.DefaultIntBounds.Lower,
			Max: input.DefaultIntBounds.Upper,
		},
		Float: FloatConfig{
			Min: input.DefaultFloatBounds.Lower,
			Max: input.DefaultFloatBounds.Upper,
		},
		Char: CharConfig{
			FoldCase: input.DefaultCharOptions.FoldCase,
		},
		String: StringConfig{
			ErrorMessage: input.DefaultBannedMessage,
		},
	}
}

// Load reads configuration from path, or from FileName in the working
// directory when path is empty. A missing default file yields Default();
// a missing explicit path is an error. INPUTHANDLER_* environment variables
// override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		logger.Debug("no config file found, using defaults", logger.F("file", FileName))
	} else {
		logger.Debug("loaded config", logger.F("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// file does not mention.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("theme", d.Theme)
	v.SetDefault("echo", d.Echo)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("integer.min", d.Integer.Min)
	v.SetDefault("integer.max", d.Integer.Max)
	v.SetDefault("integer.exclusive", d.Integer.Exclusive)
	v.SetDefault("float.min", d.Float.Min)
	v.SetDefault("float.max", d.Float.Max)
	v.SetDefault("float.exclusive", d.Float.Exclusive)
	v.SetDefault("char.allowed", d.Char.Allowed)
	v.SetDefault("char.fold_case", d.Char.FoldCase)
	v.SetDefault("string.banned", d.String.Banned)
	v.SetDefault("string.error_message", d.String.ErrorMessage)
}

// Validate checks enumerated values and bound ordering.
func (c *Config) Validate() error {
	var errs []error

	switch c.Theme {
	case ThemeColor, ThemePlain:
	default:
		errs = append(errs, fmt.Errorf("theme: must be %q or %q, got %q", ThemeColor, ThemePlain, c.Theme))
	}

	switch c.Echo {
	case EchoAuto, EchoAlways, EchoNever:
	default:
		errs = append(errs, fmt.Errorf("echo: must be %q, %q or %q, got %q", EchoAuto, EchoAlways, EchoNever, c.Echo))
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	if c.Integer.Min > c.Integer.Max {
		errs = append(errs, fmt.Errorf("integer: min %d is greater than max %d", c.Integer.Min, c.Integer.Max))
	}
	if c.Float.Min > c.Float.Max {
		errs = append(errs, fmt.Errorf("float: min %v is greater than max %v", c.Float.Min, c.Float.Max))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// IntBounds converts the integer section to input bounds.
func (c *Config) IntBounds() input.Bounds[int] {
	return input.Bounds[int]{Lower: c.Integer.Min, Upper: c.Integer.Max, Exclusive: c.Integer.Exclusive}
}

// FloatBounds converts the float section to input bounds.
func (c *Config) FloatBounds() input.Bounds[float64] {
	return input.Bounds[float64]{Lower: c.Float.Min, Upper: c.Float.Max, Exclusive: c.Float.Exclusive}
}

// CharOptions converts the char section to input options.
func (c *Config) CharOptions() input.CharOptions {
	return input.CharOptions{Allowed: c.Char.Allowed, FoldCase: c.Char.FoldCase}
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
