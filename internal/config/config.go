// Package config loads CLI configuration from defaults, an optional YAML
// file, ARCHIPELAGO_* environment variables and command-line flags
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "ARCHIPELAGO"

// Config is the root configuration struct for the archipelago CLI
type Config struct {
	Routes RoutesConfig `mapstructure:"routes"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// RoutesConfig controls route discovery
type RoutesConfig struct {
	Dir         string `mapstructure:"dir" validate:"required"`
	Strict      bool   `mapstructure:"strict"`
	Concurrency int    `mapstructure:"concurrency" validate:"min=0"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	Framework       string        `mapstructure:"framework" validate:"required,oneof=gin echo fiber chi"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// flagToViperKey maps CLI flag names to viper configuration keys
var flagToViperKey = map[string]string{
	"dir":         "routes.dir",
	"strict":      "routes.strict",
	"concurrency": "routes.concurrency",
	"addr":        "server.addr",
	"framework":   "server.framework",
	"log-level":   "log.level",
	"log-format":  "log.format",
}

// bindFlags binds explicitly set CLI flags to viper keys
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		viperKey, ok := flagToViperKey[f.Name]
		if !ok {
			return
		}

		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance
func setDefaults(v *viper.Viper) {
	v.SetDefault("routes.dir", "./routes")
	v.SetDefault("routes.strict", false)
	v.SetDefault("routes.concurrency", 0) // unbounded

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.framework", "echo")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads configuration and returns a validated Config struct
// Order of precedence (highest to lowest): flags > env > config file > defaults
//
// An explicitly named configFile must exist; without one, ./archipelago.yaml
// is read when present
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("archipelago")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
