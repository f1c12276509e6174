package logger

import "context"

// NopLogger discards everything. Useful as a default in tests and for
// components constructed without an explicit logger.
type NopLogger struct{}

func NewNop() Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...Field)               {}
func (NopLogger) Info(string, ...Field)                {}
func (NopLogger) Warn(string, ...Field)                {}
func (NopLogger) Error(string, ...Field)               {}
func (NopLogger) Fatal(string, ...Field)               {}
func (n NopLogger) WithContext(context.Context) Logger { return n }
func (n NopLogger) WithFields(...Field) Logger         { return n }
func (NopLogger) Sync() error                          { return nil }
