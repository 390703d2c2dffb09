package config

import (
	"fmt"

	"github.com/HerbHall/authdeck/internal/version"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the root logger. JSON output uses the production encoder
// with ISO8601 timestamps; console output uses the development encoder.
// Stack traces are attached only at debug level.
func NewLogger(c LoggingConfig, opts ...zap.Option) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	var zc zap.Config
	switch c.Format {
	case "json", "":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "console":
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
	default:
		return nil, fmt.Errorf("invalid log format %q: must be \"json\" or \"console\"", c.Format)
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = level > zapcore.DebugLevel
	zc.InitialFields = map[string]any{
		"service": "authdeck",
		"version": version.Short(),
	}
	return zc.Build(opts...)
}
