// Package config loads the linefit command line configuration.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load, e.g.
// LINEFIT_LEARNING_RATE or LINEFIT_LOG_LEVEL.
const EnvPrefix = "LINEFIT"

// Config is the configuration of the linefit command.
type Config struct {
	Input         string    `mapstructure:"input"`
	Epochs        int       `mapstructure:"epochs" validate:"gte=0"`
	LearningRate  float64   `mapstructure:"learning_rate" validate:"gt=0"`
	Verbose       bool      `mapstructure:"verbose"`
	ProgressEvery int       `mapstructure:"progress_every" validate:"gte=0"`
	ProgressBar   bool      `mapstructure:"progress_bar"`
	Plot          string    `mapstructure:"plot"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig is the configuration of the logger.
type LogConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge     int    `mapstructure:"max_age" validate:"gte=0"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Epochs:        1000,
		LearningRate:  0.0001,
		ProgressEvery: 1,
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			MaxSize: 100,
		},
	}
}

// SetDefault registers the defaults of Default in v.
func SetDefault(v *viper.Viper) {
	d := Default()
	v.SetDefault("input", d.Input)
	v.SetDefault("epochs", d.Epochs)
	v.SetDefault("learning_rate", d.LearningRate)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("progress_every", d.ProgressEvery)
	v.SetDefault("progress_bar", d.ProgressBar)
	v.SetDefault("plot", d.Plot)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
}

// Load reads the configuration from v. Defaults are applied first, then the
// config file (if v has one set), then LINEFIT_* environment variables and
// any flags already bound to v.
func Load(v *viper.Viper) (*Config, error) {
	SetDefault(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", v.ConfigFileUsed())
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks the value constraints of the configuration. The first
// violated field is reported as a *errors.ValidationError.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.SetTagName("validate")
	if err := validate.Struct(c); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return errors.NewValidationError(fe.Namespace(), "must satisfy "+fe.Tag()+" "+fe.Param(), fe.Value())
		}
		return errors.Wrap(err, "validate config")
	}
	return nil
}
