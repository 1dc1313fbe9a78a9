package app

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

const debugTimeFormat = "02-01-2006 15:04:05"

// Log formats accepted by NewLogger.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// LogLevel maps a verbosity counter to a level: any -v means debug, any -q
// means errors only.
func LogLevel(verbosity int) slog.Level {
	switch {
	case verbosity > 0:
		return slog.LevelDebug
	case verbosity < 0:
		return slog.LevelError
	}
	return slog.LevelInfo
}

func rewriteLogLevel(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		level, ok := a.Value.Any().(slog.Level)
		if !ok {
			return a
		}
		var levelText string
		switch level {
		case slog.LevelDebug:
			levelText = "DEBUG"
		case slog.LevelInfo:
			levelText = color.GreenString("INFO")
		case slog.LevelWarn:
			levelText = color.YellowString("WARN")
		case slog.LevelError:
			levelText = color.RedString("ERROR")
		default:
			levelText = level.String()
		}
		a.Value = slog.StringValue(levelText)
	}
	return a
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return rewriteLogLevel(groups, a)
}

// NewLogger creates an isolated logger writing to w. It does not set the
// global logger. Timestamps are only printed at debug level.
func NewLogger(verbosity int, format string, w io.Writer) *slog.Logger {
	level := LogLevel(verbosity)
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	opts := &tint.Options{
		Level:       level,
		TimeFormat:  debugTimeFormat,
		ReplaceAttr: rewriteLogLevel,
		NoColor:     color.NoColor,
	}
	if level > slog.LevelDebug {
		opts.ReplaceAttr = dropTime
	}
	return slog.New(tint.NewHandler(w, opts))
}
