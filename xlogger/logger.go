// Package xlogger builds slog loggers for the command line tools.
package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

type Config struct {
	Level      string `yaml:"level" default:"info"`
	LogType    string `yaml:"log_type" default:"text"`
	AddSource  bool   `yaml:"add_source"`
	SourcePath string `yaml:"source_path"`

	// Redact lists attribute keys whose values are never written.
	Redact []string `yaml:"redact"`

	// Output defaults to os.Stderr, keeping stdout free for command results.
	Output io.Writer `yaml:"-"`
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf),
	}

	output := conf.Output
	if output == nil {
		output = os.Stderr
	}

	return slog.New(getHandler(conf.LogType, output, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, output io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(output, opts)

	case "none":
		return slog.DiscardHandler

	default:
		return slog.NewTextHandler(output, opts)
	}
}

func replaceAttr(conf Config) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if slices.Contains(conf.Redact, attr.Key) {
			return slog.String(attr.Key, redacted)
		}

		if attr.Key == slog.SourceKey {
			if source, ok := attr.Value.Any().(*slog.Source); ok && source != nil {
				return slog.String(slog.SourceKey, trimSource(source, conf.SourcePath))
			}
		}

		return attr
	}
}

func trimSource(source *slog.Source, prefix string) string {
	file := source.File

	if len(prefix) > 0 {
		if strings.HasPrefix(file, prefix) {
			file = strings.TrimPrefix(file, prefix)
		} else if index := strings.Index(file, prefix); index > 0 {
			file = file[index+len(prefix):]
		}
	}

	return fmt.Sprintf("%s:%d", file, source.Line)
}
