// Package config loads the CLI settings from flags, environment variables
// (LEDGERSKEMA_*) and an optional ledgerskema.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/reoring/ledgerskema"
)

const (
	EnvPrefix     = "LEDGERSKEMA"
	FileName      = "ledgerskema"
	KeyLogLevel   = "log-level"
	KeyLogFormat  = "log-format"
	KeyLang       = "lang"
	KeyDuplicates = "duplicate-keys"
	KeyMaxDepth   = "max-depth"
	KeyOutput     = "output"
)

const defaultMaxDepth = 32

// Config holds the settings of one CLI run.
type Config struct {
	LogLevel      string `mapstructure:"log-level" validate:"oneof=trace debug info warn error"`
	LogFormat     string `mapstructure:"log-format" validate:"oneof=console json"`
	Lang          string `mapstructure:"lang" validate:"oneof=en ja"`
	DuplicateKeys string `mapstructure:"duplicate-keys" validate:"oneof=error warn ignore"`
	MaxDepth      int    `mapstructure:"max-depth" validate:"min=1,max=1024"`
	Output        string `mapstructure:"output" validate:"oneof=text json"`
}

var validate = validator.New()

// New returns a viper instance with defaults, env binding and config search
// paths set up. An explicit file overrides the search.
func New(file string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLang, "en")
	v.SetDefault(KeyDuplicates, "error")
	v.SetDefault(KeyMaxDepth, defaultMaxDepth)
	v.SetDefault(KeyOutput, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ledgerskema")
	}
	return v
}

// Load reads the config file, if any, and returns the validated settings.
// A missing file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// DecodeOpt maps the settings onto the decoding options of the schema
// constructors.
func (c Config) DecodeOpt() ledgerskema.DecodeOpt {
	opt := ledgerskema.DefaultDecodeOpt()
	switch c.DuplicateKeys {
	case "warn":
		opt.Strictness.OnDuplicateKey = ledgerskema.Warn
	case "ignore":
		opt.Strictness.OnDuplicateKey = ledgerskema.Ignore
	default:
		opt.Strictness.OnDuplicateKey = ledgerskema.Error
	}
	opt.MaxDepth = c.MaxDepth
	return opt
}
