package log

import (
	"fmt"
	"sync"
)

// nullLogger is a logger that does nothing.
type nullLogger struct{}

func (nullLogger) Fatal(string)                  {}
func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// NewNullLogger returns a logger that does nothing.
func NewNullLogger() Logger {
	return nullLogger{}
}

// Recorder is a Logger that keeps every message in memory, prefixed
// with its level. It is used by tests to assert on diagnostics.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level, format string, args ...interface{}) {
	r.mu.Lock()
	r.Messages = append(r.Messages, level+" "+fmt.Sprintf(format, args...))
	r.mu.Unlock()
}

func (r *Recorder) Fatal(str string) { r.record("FATAL", "%s", str) }

func (r *Recorder) Infof(format string, args ...interface{}) { r.record("INFO", format, args...) }

func (r *Recorder) Errorf(format string, args ...interface{}) { r.record("ERROR", format, args...) }

func (r *Recorder) Debugf(format string, args ...interface{}) { r.record("DEBUG", format, args...) }

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Messages)
}
