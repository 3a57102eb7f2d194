package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects how a log sink encodes entries.
type Format string

// Log formats. Console output is meant for operators watching a node, JSON
// output for files that are shipped elsewhere.
const (
	ConsoleFormat Format = "console"
	JSONFormat    Format = "json"
)

// ParseFormat decodes the textual form of a format. An empty string selects
// JSONFormat, the default for log files.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(raw)) {
	case "", JSONFormat:
		return JSONFormat, nil
	case ConsoleFormat:
		return ConsoleFormat, nil
	default:
		return "", fmt.Errorf("log: unable to decode Format value: %q", raw)
	}
}

// UnmarshalYAML implements the YAML decoding interface.
func (f *Format) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := ""
	if err := unmarshal(&raw); err != nil {
		return err
	}
	format, err := ParseFormat(raw)
	if err != nil {
		return err
	}
	*f = format
	return nil
}

func consoleEncoder(color bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     encConsoleTime,
		LevelKey:       "L",
		LineEnding:     zapcore.DefaultLineEnding,
		MessageKey:     "M",
		NameKey:        "N",
		TimeKey:        "T",
	}
	if color {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func jsonEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		LevelKey:       "level",
		LineEnding:     zapcore.DefaultLineEnding,
		MessageKey:     "msg",
		NameKey:        "logger",
		TimeKey:        "ts",
	})
}

func encConsoleTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 15:04:05]"))
}

func newCore(path string, lvl Level, enc zapcore.Encoder) (zapcore.Core, error) {
	sink, _, err := zap.Open(path)
	if err != nil {
		return nil, err
	}
	return zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(zapcore.Level(lvl))), nil
}

// addCore installs the core as the root logger, or tees it with the existing
// root once one has been set up.
func addCore(c zapcore.Core) {
	if !ready {
		root = zap.New(c, zap.ErrorOutput(zapcore.Lock(os.Stderr)))
		ready = true
		return
	}
	root = root.WithOptions(zap.WrapCore(func(r zapcore.Core) zapcore.Core {
		return zapcore.NewTee(r, c)
	}))
}

// InitConsoleLogger sets up colourised console output on stderr for use as
// the root logger. If a root logger already exists, the console output is
// tee-d together with it.
func InitConsoleLogger(lvl Level) error {
	c, err := newCore("stderr", lvl, consoleEncoder(true))
	if err != nil {
		return err
	}
	addCore(c)
	return nil
}

// InitFileLogger appends entries at or above lvl to the file at path, encoded
// in the given format. If a root logger already exists, the file output is
// tee-d together with it.
func InitFileLogger(path string, lvl Level, format Format) error {
	enc := jsonEncoder()
	if format == ConsoleFormat {
		enc = consoleEncoder(false)
	}
	c, err := newCore(path, lvl, enc)
	if err != nil {
		return err
	}
	addCore(c)
	return nil
}
