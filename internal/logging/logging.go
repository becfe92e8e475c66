package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a structured logger that may also own a rotating log file.
type Logger struct {
	*slog.Logger
	LogFile string

	file *lumberjack.Logger
}

// ParseLevel maps a textual level to a slog level. Unknown names fall back
// to info and report false.
func ParseLevel(level string) (slog.Level, bool) {
	switch level {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to out and, when file is non-empty, to
// a rotating log file as well.
func New(level, file string, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	lvl, ok := ParseLevel(level)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid log level\n", level)
	}

	l := &Logger{LogFile: file}

	w := out
	if file != "" {
		l.file = &lumberjack.Logger{
			Filename: file,
			MaxSize:  64, // MB
			MaxAge:   14,
			Compress: true,
		}
		w = io.MultiWriter(out, l.file)
	}

	l.Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	return l
}

// LogStartup records basic information about the running binary.
func (l *Logger) LogStartup(service string) {
	l.Info("starting", slog.String("service", service),
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()))

	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Debug("build", slog.String("go_version", bi.GoVersion), slog.String("path", bi.Path))
	}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
