// Package logs builds the process-wide structured logger. Output is JSON in
// deployment and human-readable text when log.pretty is set; every record
// carries the service name so aggregated logs stay attributable.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"hivefund/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	// Source locations are only worth the overhead while debugging.
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: params.Config.Env.Debug,
	}

	var handler slog.Handler
	if logCfg.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if name := params.Config.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level. An empty level
// defaults to info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
