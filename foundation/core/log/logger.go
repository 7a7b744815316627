// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger that renders a template, formats the line
//              and writes it. Builders return modified copies so a configured
//              logger can be shared between goroutines.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-16 v0.2.0: Template rendering, injectable clock, all-or-nothing writes

package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
	"github.com/msto63/hlog/foundation/template"
	"github.com/msto63/hlog/foundation/utils/timex"
)

// DefaultName is the logger name printed when none is configured
const DefaultName = "H-LOG"

// Logger renders templates into timestamped lines
type Logger struct {
	name      string
	level     Level
	formatter Formatter
	output    io.Writer
	clock     timex.Clock
	parser    *template.Parser

	// serializes writes so concurrent lines never interleave
	writeMu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Name   string
	Output io.Writer
	UTC    bool
	Marker rune
}

// New creates a new logger writing to stdout with the default name and marker
func New() *Logger {
	p, _ := template.NewParser()
	return &Logger{
		name:      DefaultName,
		level:     DefaultLevel(),
		formatter: NewLineFormatter(),
		output:    os.Stdout,
		clock:     timex.SystemClock,
		parser:    p,
		writeMu:   &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger from config. Zero fields keep defaults.
func NewWithConfig(config Config) (*Logger, error) {
	logger := New()

	if config.Name != "" {
		logger.name = config.Name
	}

	if config.Output != nil {
		logger.output = config.Output
	}

	logger.clock = timex.ClockFor(config.UTC)

	if config.Marker != 0 {
		var err error
		logger, err = logger.WithMarker(config.Marker)
		if err != nil {
			return nil, err
		}
	}

	return logger, nil
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithOutput sets the output destination. The clone gets its own write lock.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithClock sets the time source for line timestamps
func (l *Logger) WithClock(clock timex.Clock) *Logger {
	clone := l.clone()
	clone.clock = clock
	return clone
}

// WithMarker sets the rune that opens a placeholder
func (l *Logger) WithMarker(marker rune) (*Logger, error) {
	p, err := template.NewParser(template.WithMarker(marker))
	if err != nil {
		return nil, err
	}
	clone := l.clone()
	clone.parser = p
	return clone, nil
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Marker returns the placeholder marker
func (l *Logger) Marker() rune {
	return l.parser.Marker()
}

// Sprint renders tmpl and returns the finished line without the trailing
// newline and without writing it.
func (l *Logger) Sprint(tmpl string, values ...interface{}) (string, error) {
	formatted, err := l.format(tmpl, values)
	if err != nil {
		return "", err
	}
	return string(formatted[:len(formatted)-1]), nil
}

// Info renders tmpl with values and writes one INFO line. On error nothing
// is written.
func (l *Logger) Info(tmpl string, values ...interface{}) error {
	formatted, err := l.format(tmpl, values)
	if err != nil {
		return err
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if _, err := l.output.Write(formatted); err != nil {
		return hlogerror.Wrap(err, "write log line").
			WithCode(hlogerror.CodeInternal).
			WithOperation("log.Info")
	}

	return nil
}

// MustInfo is Info that panics on error
func (l *Logger) MustInfo(tmpl string, values ...interface{}) {
	if err := l.Info(tmpl, values...); err != nil {
		panic(fmt.Sprintf("hlog: %v", err))
	}
}

func (l *Logger) format(tmpl string, values []interface{}) ([]byte, error) {
	message, err := l.parser.Format(tmpl, values...)
	if err != nil {
		return nil, err
	}

	entry := NewEntry(l.level, message).
		WithLogger(l.name).
		WithTimestamp(l.clock())

	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return nil, hlogerror.Wrap(err, "format log entry").
			WithCode(hlogerror.CodeInternal).
			WithOperation("log.Info")
	}

	return formatted, nil
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	return &Logger{
		name:      l.name,
		level:     l.level,
		formatter: l.formatter,
		output:    l.output,
		clock:     l.clock,
		parser:    l.parser,
		writeMu:   l.writeMu,
	}
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New())
}

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}

// Info logs a line using the default logger
func Info(tmpl string, values ...interface{}) error {
	return GetDefault().Info(tmpl, values...)
}

// MustInfo logs a line using the default logger and panics on error
func MustInfo(tmpl string, values ...interface{}) {
	GetDefault().MustInfo(tmpl, values...)
}
