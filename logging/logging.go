package logging

import (
	"fmt"
	stdlog "log"
	"os"
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

// Logger filters log messages by level, prefixing them with the component
// which produced them
type Logger struct {
	level  int
	prefix string
	logger *stdlog.Logger
}

// CreateLogger produces a Logger for a named component which discards
// messages below the given level
func CreateLogger(prefix string, level int) *Logger {
	return &Logger{
		level:  level,
		prefix: prefix,
		logger: stdlog.New(os.Stderr, "", stdlog.LstdFlags),
	}
}

func (l *Logger) logf(level int, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s: %s", LogLevelToString(level), l.prefix, fmt.Sprintf(format, args...))
}

// Tracef logs a message at TraceLevel
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(TraceLevel, format, args...)
}

// Debugf logs a message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args...)
}

// Infof logs a message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args...)
}

// Warnf logs a message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args...)
}

// Errorf logs a message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args...)
}

// Fatalf logs a message at FatalLevel and exits
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(FatalLevel, format, args...)
	os.Exit(1)
}
