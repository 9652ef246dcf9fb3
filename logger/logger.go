// Package logger is the logging facade of go-thermocouple.
//
// Library code never writes to a concrete logging backend. It logs through the Logger interface,
// which defaults to a log/slog handler (see NewSlog) and can be replaced with SetLogger or per
// configuration with thermocouple.WithLogger. The library only logs at configuration time, such as
// when an evaluator is compiled or domain checks are disabled; conversions never log.
//
// Levels are ordered Debug < Info < Warn < Error < Fatal, and ParseLevel accepts their lower-case names.
package logger

import (
	"fmt"
	"strings"
)

// Level is a logging severity. Lower values are more verbose.
type Level = int8

const (
	DebugLevel Level = iota - 1 // evaluator compilation and resolved configuration
	InfoLevel                   // default
	WarnLevel                   // degraded guarantees, e.g. extrapolation enabled
	ErrorLevel                  // failed commands
	FatalLevel                  // logs, then exits with status 1
)

// ParseLevel parses a level name: "debug", "info", "warn" (or "warning"), "error" or "fatal".
// An empty name selects InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a leveled, structured logger. Every logging method takes a message followed by
// alternating keys and values, e.g. Debug("compiled evaluator", "kind", "K").
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs at FatalLevel and exits the process with status 1.
	Fatal(msg string, keysAndValues ...any)

	// With returns a child logger that adds keyValues to every record. The receiver is unchanged.
	With(keyValues ...any) Logger

	Level() Level
	SetLevel(level Level)
}
