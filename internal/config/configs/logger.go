package configs

import (
	"log/slog"
	"strings"
)

// Logger defines configuration options for the structured logger. Level
// controls the minimum level emitted ("debug", "info", "warn",
// "error"). Format may be "text" (default) or "json"; an unknown
// format falls back to "text".
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel converts the textual level into a slog.Level. Unknown
// levels default to slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat validates and normalises the requested log format.
func (c Logger) SlogFormat() string {
	if strings.ToLower(c.Format) == "json" {
		return "json"
	}
	return "text"
}
