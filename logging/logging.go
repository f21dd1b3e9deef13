// Package logging provides the diagnostic sink of the calculator: a logrus
// logger writing to a time-stamped file, falling back to the console when the
// file cannot be created.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// FileTimeFormat names log files after the time the logger was created.
	FileTimeFormat = "2006-01-02 15-04-05.000-0700"
	// EntryTimeFormat stamps each entry.
	EntryTimeFormat = "2006-01-02 15-04-05.000"

	DefaultLevel = logrus.ErrorLevel
)

type Config struct {
	Level logrus.Level
	// Dir receives the log file. Empty means the working directory.
	Dir string
	// Console receives warnings and, if the file cannot be created, the
	// entries themselves. Defaults to os.Stderr.
	Console io.Writer
	Now     func() time.Time
}

type Logger struct {
	*logrus.Logger
	file *os.File
}

// New never fails: a logger that cannot open its file logs to the console.
func New(cfg Config) *Logger {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: EntryTimeFormat,
	})
	l.SetLevel(cfg.Level)

	path := filepath.Join(cfg.Dir, now().Format(FileTimeFormat)+".txt")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(console, "ERROR: Unable to Create log file: %v\n", errors.Wrapf(err, "unable to open %s", path))
		l.SetOutput(console)
		return &Logger{Logger: l}
	}
	l.SetOutput(f)
	return &Logger{Logger: l, file: f}
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

// Path returns the name of the log file, or "" when logging to the console.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	var result error
	if err := l.file.Sync(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "unable to flush log file"))
	}
	if err := l.file.Close(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "unable to close log file"))
	}
	l.file = nil
	l.SetOutput(io.Discard)
	return result
}

// ParseLevel accepts the three levels the calculator logs at.
func ParseLevel(s string) (logrus.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	}
	return DefaultLevel, errors.Errorf("unknown log level %q", s)
}
