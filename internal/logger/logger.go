// Package logger provides levelled line logging for the animation.
package logger

import (
	"io"
	"log"
)

// Logger writes one prefixed line per message.
type Logger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	verbose     bool
}

// New creates a logger writing to w. Debug lines are dropped unless verbose.
func New(w io.Writer, verbose bool) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		debugLogger: log.New(w, "[LORENZ-DEBUG] ", flags),
		infoLogger:  log.New(w, "[LORENZ-INFO] ", flags),
		warnLogger:  log.New(w, "[LORENZ-WARN] ", flags),
		errorLogger: log.New(w, "[LORENZ-ERROR] ", flags),
		verbose:     verbose,
	}
}

// Discard drops everything.
func Discard() *Logger { return New(io.Discard, false) }

func (l *Logger) Debug(format string, args ...any) {
	if l.verbose {
		l.debugLogger.Printf(format, args...)
	}
}

func (l *Logger) Info(format string, args ...any)  { l.infoLogger.Printf(format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.warnLogger.Printf(format, args...) }
func (l *Logger) Error(format string, args ...any) { l.errorLogger.Printf(format, args...) }
