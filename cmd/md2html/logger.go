package main

import (
	"fmt"
	"io"
	"sync"
)

type logLevel int

const (
	levelError logLevel = iota
	levelWarn
	levelInfo
	levelDebug
)

// logger writes leveled diagnostics. Safe for concurrent use by batch workers.
type logger struct {
	mu    sync.Mutex
	w     io.Writer
	level logLevel
}

// newLogger returns a logger at info level, error level when quiet, or
// debug level when verbose. quiet wins over verbose.
func newLogger(w io.Writer, quiet, verbose bool) *logger {
	level := levelInfo
	switch {
	case quiet:
		level = levelError
	case verbose:
		level = levelDebug
	}
	return &logger{w: w, level: level}
}

func (l *logger) logf(level logLevel, prefix, format string, args ...any) {
	if level > l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, prefix+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...any) { l.logf(levelDebug, "[DEBUG] ", format, args...) }
func (l *logger) Infof(format string, args ...any) { l.logf(levelInfo, "[INFO] ", format, args...) }
func (l *logger) Warnf(format string, args ...any) { l.logf(levelWarn, "[WARN] ", format, args...) }
func (l *logger) Errorf(format string, args ...any) { l.logf(levelError, "[ERROR] ", format, args...) }

// Verbose reports whether debug output is enabled.
func (l *logger) Verbose() bool { return l.level >= levelDebug }

// Quiet reports whether only errors are written.
func (l *logger) Quiet() bool { return l.level == levelError }
