// Package logging provides log-level constants and prefixed, level-gated
// loggers for hepquery components.
package logging

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var minLevel atomic.Int32

func init() {
	minLevel.Store(InfoLevel)
}

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// SetLevel sets the minimum level emitted by subsequently created
// loggers. Loggers already handed out keep the level they were gated at.
func SetLevel(level int) {
	minLevel.Store(int32(level))
}

// Logger returns a logger for a component, emitting at the given level.
// Loggers below the configured minimum level discard their output.
func Logger(component string, level int) *log.Logger {
	w := io.Writer(os.Stderr)
	if level < int(minLevel.Load()) {
		w = io.Discard
	}
	prefix := "hepquery/" + component + " " + LogLevelToString(level) + ": "
	return log.New(w, prefix, log.LstdFlags)
}
