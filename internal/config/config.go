// Package config turns the Viper settings tree into the typed configuration
// the server is wired from.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Preference backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the complete server configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Prefs      PrefsConfig      `mapstructure:"prefs"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Appearance AppearanceConfig `mapstructure:"appearance"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"min=1,max=65535"`
	DataDir  string `mapstructure:"data_dir"`
	DevMode  bool   `mapstructure:"dev_mode"`
	ReadOnly bool   `mapstructure:"read_only"`
}

// Addr returns the listen address as host:port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// PrefsConfig selects where appearance preferences are persisted.
type PrefsConfig struct {
	Backend string      `mapstructure:"backend" validate:"oneof=sqlite redis memory"`
	Path    string      `mapstructure:"path" validate:"required_if=Backend sqlite"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig is used when the backend is redis.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db" validate:"gte=0"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// AuthConfig configures bearer token validation. Tokens are issued by the
// hosted auth service and share its signing secret.
type AuthConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Secret    string        `mapstructure:"secret"`
	AccessTTL time.Duration `mapstructure:"access_ttl" validate:"gt=0"`
}

// AppearanceConfig tunes the appearance engine.
type AppearanceConfig struct {
	TransitionDuration time.Duration `mapstructure:"transition_duration" validate:"gt=0"`
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks field ranges and the cross-field rules the tags can't express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			msgs := make([]string, 0, len(ves))
			for _, fe := range ves {
				msgs = append(msgs, fmt.Sprintf("%s: failed %s", strings.ToLower(fe.Namespace()), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Prefs.Backend == BackendRedis && c.Prefs.Redis.Addr == "" {
		return errors.New("invalid config: prefs.redis.addr is required for the redis backend")
	}
	if c.Auth.Enabled && len(c.Auth.Secret) < 32 {
		return errors.New("invalid config: auth.secret must be at least 32 bytes when auth is enabled")
	}
	return nil
}

var validate = validator.New()
