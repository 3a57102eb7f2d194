// Please note: the logging levels are copied verbatim from zapcore, which is
// under the MIT License.

// Package log provides an interface to a global logger.
package log // import "chainspace.io/ledger/log"

import (
	"time"

	"github.com/tav/golly/process"
	"go.uber.org/zap"
)

var (
	root  = zap.NewNop()
	ready bool
)

// Field is an alias so that callers don't need to import zap directly.
type Field = zap.Field

// Logger is an alias for a zap logger preset with fields.
type Logger = zap.Logger

// Debug logs the given message and fields at DebugLevel using the root logger.
func Debug(msg string, fields ...Field) {
	root.Debug(msg, fields...)
}

// Error logs the given message and fields at ErrorLevel using the root logger.
func Error(msg string, fields ...Field) {
	root.Error(msg, fields...)
}

// Fatal logs the given message and fields at FatalLevel and then exits the
// process.
func Fatal(msg string, fields ...Field) {
	root.Fatal(msg, fields...)
}

// Info logs the given message and fields at InfoLevel using the root logger.
func Info(msg string, fields ...Field) {
	root.Info(msg, fields...)
}

// Warn logs the given message and fields at WarnLevel using the root logger.
func Warn(msg string, fields ...Field) {
	root.Warn(msg, fields...)
}

// AtDebug returns whether the root logger will emit DebugLevel entries.
func AtDebug() bool {
	return root.Core().Enabled(zap.DebugLevel)
}

// SetGlobalFields presets the given fields on the root logger. It is not
// threadsafe, so should be called before any goroutines make log calls.
func SetGlobalFields(fields ...Field) {
	root = root.With(fields...)
}

// With returns a new logger based off of the root logger that comes preset
// with the given fields.
func With(fields ...Field) *Logger {
	return root.With(fields...)
}

// Bool constructs a field with a boolean value.
func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

// Duration constructs a field with a duration value.
func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// Err constructs a field with the given error under the "error" key.
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field with an int value.
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Int64 constructs a field with an int64 value.
func Int64(key string, value int64) Field {
	return zap.Int64(key, value)
}

// String constructs a field with a string value.
func String(key string, value string) Field {
	return zap.String(key, value)
}

// Strings constructs a field with a slice of string values.
func Strings(key string, value []string) Field {
	return zap.Strings(key, value)
}

func init() {
	// Flush the logs before exiting the process.
	process.SetExitHandler(func() {
		root.Sync()
	})
}
