// Package logging adapts zerolog to the domain Logger interface.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ochairo/buildcfg/internal/domain/interfaces"
)

// Logger implements interfaces.Logger on top of zerolog
type Logger struct {
	zl zerolog.Logger
}

// New creates a JSON logger writing to w at the given level ("" means info)
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	return &Logger{zl: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}, nil
}

// NewConsole creates a human-readable logger writing to w
func NewConsole(w io.Writer, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return &Logger{zl: zerolog.New(out).Level(lvl).With().Timestamp().Logger()}, nil
}

// With returns a child logger carrying a component name
func (l *Logger) With(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	withFields(l.zl.Debug(), fields).Msg(msg)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	withFields(l.zl.Info(), fields).Msg(msg)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	withFields(l.zl.Warn(), fields).Msg(msg)
}

// Error logs error messages; an error-valued "error" field is attached with Err
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	withFields(l.zl.Error(), fields).Msg(msg)
}

func withFields(e *zerolog.Event, fields []interfaces.Field) *zerolog.Event {
	for _, f := range fields {
		if err, ok := f.Value.(error); ok && f.Key == zerolog.ErrorFieldName {
			e = e.Err(err)
			continue
		}
		e = e.Interface(f.Key, f.Value)
	}
	return e
}

func parseLevel(level string) (zerolog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

var _ interfaces.Logger = (*Logger)(nil)
