package logger

import (
	"io"
	"log/slog"
)

// Constants for different environment types.
const (
	EnvLocal = "local"
	EnvDev   = "development"
	EnvProd  = "production"
)

// New returns a logger writing to w, configured for the given environment.
// Unknown environments fall back to a minimal JSON logger at error level.
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case EnvLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}))
	case EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       slog.LevelWarn,
			ReplaceAttr: dropTime,
		}))
	}

	log := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       slog.LevelError,
		ReplaceAttr: dropTime,
	}))
	log.Error(
		"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
		slog.String("env", env),
		slog.String("available_envs", "local, development, production"))

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}
