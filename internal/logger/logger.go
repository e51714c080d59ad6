package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Level string

type Format string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"

	FormatText Format = "text"
	FormatJSON Format = "json"
)

var levels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
	// Output is one of stdout, stderr, discard or a file path.
	Output string `toml:"output"`
}

func (c Config) Validate() error {
	if _, ok := levels[c.Level]; !ok {
		supported := make([]string, 0, len(levels))
		for _, l := range maps.Keys(levels) {
			supported = append(supported, string(l))
		}
		slices.Sort(supported)
		return fmt.Errorf("unsupported log level %q, supported values are: %s", c.Level, strings.Join(supported, ", "))
	}

	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("unsupported log format %q, supported values are: text, json", c.Format)
	}

	return nil
}

type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New builds a logger from conf. Unknown levels fall back to info and unknown
// formats to text; an output file that cannot be opened falls back to stderr.
func New(conf Config) *Logger {
	var closer io.Closer
	var out io.Writer

	switch conf.Output {
	case "", "discard":
		out = io.Discard
	case "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(conf.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to open log output %s, using stderr: %s\n", conf.Output, err.Error())
			out = os.Stderr
		} else {
			out = f
			closer = f
		}
	}

	return &Logger{
		Logger: slog.New(newHandler(out, conf)),
		closer: closer,
	}
}

func newHandler(out io.Writer, conf Config) slog.Handler {
	level, ok := levels[conf.Level]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	if conf.Format == FormatJSON {
		return slog.NewJSONHandler(out, opts)
	}

	return slog.NewTextHandler(out, opts)
}

// NewWithWriter is used by tests to capture log output.
func NewWithWriter(out io.Writer, conf Config) *Logger {
	return &Logger{Logger: slog.New(newHandler(out, conf))}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
		closer: l.closer,
	}
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	err := l.closer.Close()
	l.closer = nil
	return err
}
