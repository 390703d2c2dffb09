package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig reads configuration from file and environment variables.
// Environment keys use the AD_ prefix with dots replaced by underscores,
// so AD_PREFS_BACKEND sets prefs.backend.
func LoadConfig(configPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.data_dir", "./data")
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("server.read_only", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("prefs.backend", "sqlite")
	v.SetDefault("prefs.path", "./data/authdeck.db")
	v.SetDefault("prefs.redis.addr", "localhost:6379")
	v.SetDefault("prefs.redis.password", "")
	v.SetDefault("prefs.redis.db", 0)
	v.SetDefault("prefs.redis.key_prefix", "authdeck:")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.access_ttl", "15m")

	v.SetDefault("appearance.transition_duration", "500ms")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("authdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/authdeck")
	}

	v.SetEnvPrefix("AD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}
