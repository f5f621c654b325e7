// Package logger builds the process slog.Logger from LOG_* settings.
package logger

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"roadside-marketplace/internal/pkg/config"
)

// New returns a logger writing to w. Unknown levels fall back to info.
// Timestamps are rendered in the configured zone and layout.
func New(cfg config.LogConfig, w io.Writer, asJSON bool) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(cfg.Level))); err != nil {
		level = slog.LevelInfo
	}

	zone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	layout := cfg.TimeFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(zone).Format(layout))
			}
			return a
		},
	}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
