// Package logging provides a simple, color-coded leveled logger shared
// by the CLI and core packages.
package logging

import (
	"log"
	"os"

	"github.com/fatih/color"
)

// Logger wraps standard log.Logger instances for each level, prefixing
// output with a color-coded level tag.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger
}

// Log is the global logger instance used throughout the application.
var Log *Logger

// debugEnabled controls whether Debug/Debugf print anything.
var debugEnabled bool

func init() {
	Log = New(os.Stdout)
}

// New creates a Logger instance writing to out.
func New(out *os.File) *Logger {
	info := color.New(color.FgGreen).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()
	err := color.New(color.FgRed, color.Bold).SprintFunc()
	debug := color.New(color.FgHiBlack).SprintFunc()

	return &Logger{
		info:  log.New(out, info("INFO:  "), log.Ldate|log.Ltime),
		warn:  log.New(out, warn("WARN:  "), log.Ldate|log.Ltime),
		err:   log.New(out, err("ERROR: "), log.Ldate|log.Ltime),
		debug: log.New(out, debug("DEBUG: "), log.Ldate|log.Ltime),
	}
}

// SetDebug enables or disables debug logging.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// Info logs an informational message.
func (l *Logger) Info(v ...interface{}) { l.info.Println(v...) }

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) { l.info.Printf(format, v...) }

// Warn logs a warning message.
func (l *Logger) Warn(v ...interface{}) { l.warn.Println(v...) }

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.warn.Printf(format, v...) }

// Error logs an error message.
func (l *Logger) Error(v ...interface{}) { l.err.Println(v...) }

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.err.Printf(format, v...) }

// Debug logs a debug message, only when debug logging is enabled.
func (l *Logger) Debug(v ...interface{}) {
	if debugEnabled {
		l.debug.Println(v...)
	}
}

// Debugf logs a formatted debug message, only when debug logging is enabled.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if debugEnabled {
		l.debug.Printf(format, v...)
	}
}
