// Package log provides the logging interface used throughout the emulator.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger writing plain text to stderr at debug level.
func New() Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{Logger: l}
}

// NewWithLevel is the same as New, but only messages at or above
// the given level ("debug", "info", "error") are written.
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := New().(*logger)
	l.SetLevel(lvl)
	return l, nil
}

func (l *logger) Fatal(str string) {
	l.Logger.Fatal(str)
}
