package cmd

import (
	"io"
	"os"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// newLogger writes JSON lines to w at the named level; an unknown level
// falls back to info.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "retailops").Logger()
}

func defaultLogger() zerolog.Logger {
	return newLogger(os.Stderr, "info")
}

// echoLevel maps the zerolog level onto echo's gommon logger.
func echoLevel(level zerolog.Level) log.Lvl {
	switch {
	case level <= zerolog.DebugLevel:
		return log.DEBUG
	case level == zerolog.InfoLevel:
		return log.INFO
	case level == zerolog.WarnLevel:
		return log.WARN
	case level == zerolog.Disabled:
		return log.OFF
	default:
		return log.ERROR
	}
}

// gormLevel keeps SQL tracing to debug runs.
func gormLevel(level zerolog.Level) gormlogger.LogLevel {
	switch {
	case level <= zerolog.DebugLevel:
		return gormlogger.Info
	case level == zerolog.Disabled:
		return gormlogger.Silent
	case level <= zerolog.WarnLevel:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
