package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nlowe/staticd"
	staticdhttp "github.com/nlowe/staticd/http"
)

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for staticd.
type Config struct {
	Server    ServerConfig           `mapstructure:"server"`
	Locations []LocationConfig       `mapstructure:"locations" validate:"dive"`
	Cache     CacheConfig            `mapstructure:"cache"`
	CORS      staticdhttp.CORSConfig `mapstructure:"cors"`
	Log       LogConfig              `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// LocationConfig describes one serving root. Locations are ordered and
// resolution stops at the first location that yields a resource.
type LocationConfig struct {
	Type string `mapstructure:"type" validate:"required,oneof=dir zip"`
	Path string `mapstructure:"path" validate:"required"`
}

// CacheConfig holds the cache policy knobs. The legacy flags reproduce
// older prevent-caching header combinations and are off by default
// except for the modern Cache-Control pair.
type CacheConfig struct {
	Seconds                int  `mapstructure:"seconds"`
	UseExpiresHeader       bool `mapstructure:"use_expires_header"`
	UseCacheControlHeader  bool `mapstructure:"use_cache_control_header"`
	UseCacheControlNoStore bool `mapstructure:"use_cache_control_no_store"`
	AlwaysMustRevalidate   bool `mapstructure:"always_must_revalidate"`
}

// Policy converts the config into the immutable staticd.CachePolicy.
func (c CacheConfig) Policy() staticd.CachePolicy {
	return staticd.CachePolicy{
		CacheSeconds:           c.Seconds,
		UseExpiresHeader:       c.UseExpiresHeader,
		UseCacheControlHeader:  c.UseCacheControlHeader,
		UseCacheControlNoStore: c.UseCacheControlNoStore,
		AlwaysMustRevalidate:   c.AlwaysMustRevalidate,
	}
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"port":          "server.port",
	"cache-seconds": "cache.seconds",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// Use custom mapping if it exists, otherwise use flag name as-is
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)

	v.SetDefault("cache.seconds", 3600)
	v.SetDefault("cache.use_expires_header", false)
	v.SetDefault("cache.use_cache_control_header", true)
	v.SetDefault("cache.use_cache_control_no_store", true)
	v.SetDefault("cache.always_must_revalidate", false)

	v.SetDefault("log.level", "info")
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("STATICD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
