package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func defaults() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("prefs.backend", "sqlite")
	v.SetDefault("prefs.path", "./data/authdeck.db")
	v.SetDefault("auth.access_ttl", "15m")
	v.SetDefault("appearance.transition_duration", "500ms")
	return v
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(defaults())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", c.Server.Addr())
	}
	if c.Prefs.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", c.Prefs.Backend)
	}
	if c.Auth.AccessTTL != 15*time.Minute {
		t.Errorf("AccessTTL = %v, want 15m", c.Auth.AccessTTL)
	}
	if c.Appearance.TransitionDuration != 500*time.Millisecond {
		t.Errorf("TransitionDuration = %v, want 500ms", c.Appearance.TransitionDuration)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr string
	}{
		{"unknown backend", "prefs.backend", "etcd", "backend"},
		{"bad port", "server.port", 0, "port"},
		{"bad level", "logging.level", "verbose", "level"},
		{"redis without addr", "prefs.backend", "redis", "prefs.redis.addr"},
		{"short secret", "auth.enabled", true, "auth.secret"},
		{"zero transition", "appearance.transition_duration", "0s", "transitionduration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := defaults()
			v.Set(tt.key, tt.value)
			_, err := Load(v)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_RedisBackend(t *testing.T) {
	v := defaults()
	v.Set("prefs.backend", "redis")
	v.Set("prefs.redis.addr", "localhost:6379")
	v.Set("prefs.redis.key_prefix", "authdeck:")

	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Prefs.Redis.Addr != "localhost:6379" || c.Prefs.Redis.KeyPrefix != "authdeck:" {
		t.Errorf("Redis = %+v", c.Prefs.Redis)
	}
}
