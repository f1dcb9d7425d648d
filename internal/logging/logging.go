// Package logging builds the per-run logger. There is no package-level
// logger: callers own the returned Logger and close it when the run ends.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/usincome-cli/internal/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is a logrus entry tagged with a run id and backed by a closable sink.
type Logger struct {
	*logrus.Entry
	RunID  string
	closer io.Closer
}

// Open truncates (or creates) path and returns a Logger writing to it at level.
// An empty path discards all output.
func Open(path, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var (
		out    io.Writer = io.Discard
		closer io.Closer
	)
	if path != "" {
		if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("ensure log dir: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		out, closer = f, f
	}
	return New(out, lvl, closer), nil
}

// New wraps w. closer may be nil.
func New(w io.Writer, level logrus.Level, closer io.Closer) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	id := uuid.NewString()
	return &Logger{Entry: l.WithField("run", id), RunID: id, closer: closer}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, logrus.PanicLevel, nil)
}

// Close releases the log file, if any. It is safe to call more than once.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}
