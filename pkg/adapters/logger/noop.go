package logger

import "github.com/user/deskbridge/pkg/ports"

// NoopLogger drops every line. It backs --quiet.
type NoopLogger struct{}

// NewNoop returns a NoopLogger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (*NoopLogger) Debug(string, ...interface{}) {}
func (*NoopLogger) Info(string, ...interface{})  {}
func (*NoopLogger) Warn(string, ...interface{})  {}
func (*NoopLogger) Error(string, ...interface{}) {}

// WithComponent returns the receiver; there is nothing to tag.
func (l *NoopLogger) WithComponent(string) ports.Logger {
	return l
}
