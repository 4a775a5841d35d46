// Package logger builds the process logger and carries it through contexts.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Common field keys.
const (
	FieldLayer     = "layer"
	FieldUseCase   = "usecase"
	FieldAdapter   = "adapter"
	FieldComponent = "component"
	FieldAction    = "action"
	FieldEntityID  = "entity_id"
	FieldEndpoint  = "endpoint"
	FieldHook      = "hook"
	FieldEvent     = "event"
	FieldHandler   = "handler"
	FieldDuration  = "duration"
	FieldCount     = "count"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
)

// Config selects level and output format.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// FileConfig enables a rotating log file next to the console output.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New returns a logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return build(cfg, consoleWriter(cfg, os.Stderr))
}

// NewWithFile returns a logger writing to stderr and to a rotating file.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, file FileConfig) (zerolog.Logger, func(), error) {
	if !file.Enabled {
		return New(cfg), func() {}, nil
	}
	if file.Path == "" {
		return Default(), nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(file.Path), 0o750); err != nil {
		return Default(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSize,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAge,
		Compress:   file.Compress,
	}

	w := zerolog.MultiLevelWriter(consoleWriter(cfg, os.Stderr), rotator)
	cleanup := func() {
		_ = rotator.Close()
	}
	return build(cfg, w), cleanup, nil
}

// Default returns an info level console logger.
func Default() zerolog.Logger {
	return New(Config{Level: "info", Format: "console"})
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithCtx stores log in ctx.
func WithCtx(ctx context.Context, log zerolog.Logger) context.Context {
	return log.WithContext(ctx)
}

// FromCtx returns the logger carried by ctx. A context without a logger
// yields the disabled logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// CtxWithFields returns a context whose logger carries fields.
func CtxWithFields(ctx context.Context, fields map[string]any) context.Context {
	log := zerolog.Ctx(ctx).With().Fields(fields).Logger()
	return log.WithContext(ctx)
}

// CtxWithField is CtxWithFields for a single field.
func CtxWithField(ctx context.Context, key string, value any) context.Context {
	return CtxWithFields(ctx, map[string]any{key: value})
}

func build(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

func consoleWriter(cfg Config, w io.Writer) io.Writer {
	if strings.EqualFold(cfg.Format, "json") {
		return w
	}
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
}
