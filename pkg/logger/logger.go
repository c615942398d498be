// Package logger is a small structured-logging facade over log/slog. The
// rest of the service logs through it so call sites stay free of slog
// plumbing and every line carries its source location.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// callerSkip skips runtime frames: getCaller -> emit -> level method ->
// the actual call site.
const callerSkip = 3

// Logger is the logging interface the service depends on.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	Named(name string) Logger
}

// Field is one structured key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// Field constructors cover the value kinds the service actually logs.
func String(key, val string) Field  { return Field{Key: key, Value: val} }
func Int(key string, val int) Field { return Field{Key: key, Value: val} }
func Error(err error) Field         { return Field{Key: "error", Value: err} }

// facade adapts a slog.Logger to the Logger interface.
type facade struct {
	slog *slog.Logger
}

func (f *facade) Named(name string) Logger {
	return &facade{slog: f.slog.WithGroup(name)}
}

func (f *facade) Debug(ctx context.Context, msg string, fields ...Field) {
	f.emit(ctx, slog.LevelDebug, msg, fields)
}

func (f *facade) Info(ctx context.Context, msg string, fields ...Field) {
	f.emit(ctx, slog.LevelInfo, msg, fields)
}

func (f *facade) Warn(ctx context.Context, msg string, fields ...Field) {
	f.emit(ctx, slog.LevelWarn, msg, fields)
}

func (f *facade) Error(ctx context.Context, msg string, fields ...Field) {
	f.emit(ctx, slog.LevelError, msg, fields)
}

func (f *facade) emit(ctx context.Context, level slog.Level, msg string, fields []Field) {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for _, fld := range fields {
		attrs = append(attrs, slog.Any(fld.Key, fld.Value))
	}
	attrs = append(attrs, slog.String("source", getCaller()))
	f.slog.LogAttrs(ctx, level, msg, attrs...)
}

var global Logger
var levelVar slog.LevelVar

// Init installs the global logger writing text lines to stdout at info
// level. Safe to call more than once.
func Init() error {
	levelVar.Set(slog.LevelInfo)
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: &levelVar})
	global = &facade{slog: slog.New(h)}
	return nil
}

// getCaller reports the call site as a working-directory-relative
// file.go:line, falling back to the bare filename.
func getCaller() string {
	_, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return "unknown:0"
	}
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, file); err == nil {
			return fmt.Sprintf("%s:%d", rel, line)
		}
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Get returns the global logger. Init must have been called first.
func Get() Logger {
	if global == nil {
		panic("logger not initialized; call logger.Init first")
	}
	return global
}

// Named returns a logger that groups its fields under name.
func Named(name string) Logger {
	return Get().Named(name)
}

// Sync flushes buffered log entries. slog does not buffer; kept so main's
// shutdown path has a single call shape.
func Sync() error {
	return nil
}

// SetLevel updates the level of the global handler.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString parses and sets the logging level. Accepts debug, info,
// warn/warning, error, case-insensitive; empty means info.
func SetLevelString(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		SetLevel(slog.LevelDebug)
	case "", "info":
		SetLevel(slog.LevelInfo)
	case "warn", "warning":
		SetLevel(slog.LevelWarn)
	case "error":
		SetLevel(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	return nil
}
