package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the application logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config holds logger configuration.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // text, json
	Output io.Writer // nil means stderr
}

// DefaultConfig is used until the CLI configuration has been loaded: warn
// and above, as text, on stderr.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: "text", Output: os.Stderr}
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// level is shared by every logger so a config reload can change verbosity
// of loggers already handed out.
var level = new(slog.LevelVar)

// New creates a logger. Text output carries no timestamp since it is read
// interleaved with the prompt; JSON output keeps it.
func New(cfg Config) (Logger, error) {
	lvl, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q (debug, info, warn, error)", cfg.Level)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return redactSensitive(a)
			},
		})
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				return redactSensitive(a)
			},
		})
	default:
		return nil, fmt.Errorf("unknown log format %q (text, json)", cfg.Format)
	}

	level.Set(lvl)
	return &slogLogger{l: slog.New(handler)}, nil
}

// SetLevel changes the level of every logger. Unknown levels are ignored.
func SetLevel(name string) {
	if lvl, ok := levels[strings.ToLower(name)]; ok {
		level.Set(lvl)
	}
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

var defaultLogger atomic.Value // Logger

func init() {
	l, _ := New(DefaultConfig())
	defaultLogger.Store(&holder{l})
}

// holder keeps atomic.Value storing one concrete type.
type holder struct{ Logger }

// SetDefault replaces the process-wide logger.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger.Store(&holder{l})
	}
}

// Default returns the process-wide logger.
func Default() Logger {
	return defaultLogger.Load().(*holder).Logger
}

// Info logs with the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn logs with the default logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }
