// Package logger builds the zap-backed logr.Logger used by the formbuilder
// command and carries it through contexts.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

const (
	CommandKey   = "command"
	VersionKey   = "version"
	CommitKey    = "commit"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

// Build metadata, overridden with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
)

var (
	once sync.Once

	globalZapLogger  *zap.Logger
	globalLogrLogger logr.Logger
	initialised      bool
)

// ParseLevel maps a level name onto a zap level. logr's V(1) corresponds to
// "debug".
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logger: unknown level %q", name)
	}
}

// New builds a JSON logger writing to w at the given minimum level. It does not
// touch the global logger.
func New(level zapcore.Level, w io.Writer) (logr.Logger, *zap.Logger) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	).With([]zapcore.Field{
		zap.String(VersionKey, Version),
		zap.String(CommitKey, Commit),
		zap.String(GoVersionKey, goVersion),
	})

	zl := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return zapr.NewLogger(zl), zl
}

// Get initialises the global logger on first use, writing to stderr. Later
// calls return the same logger regardless of level.
func Get(level zapcore.Level) logr.Logger {
	once.Do(func() {
		globalLogrLogger, globalZapLogger = New(level, os.Stderr)
		initialised = true
	})
	return globalLogrLogger
}

// GetGlobalLogger returns the global logger, or a discarding logger when Get
// has not run.
func GetGlobalLogger() logr.Logger {
	if !initialised {
		return logr.Discard()
	}
	return globalLogrLogger
}

// WithLogger attaches log to ctx.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger attached to ctx, falling back to the global
// logger.
func FromContext(ctx context.Context) logr.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerContextKey{}).(logr.Logger); ok {
			return log
		}
	}
	return GetGlobalLogger()
}

// Sync flushes buffered entries of the global logger.
func Sync() {
	if globalZapLogger == nil {
		return
	}
	if err := globalZapLogger.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync zap logger: %v\n", err)
	}
}

// isIgnorableSyncError reports the errors stderr returns when it is a pipe or
// a terminal.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}
