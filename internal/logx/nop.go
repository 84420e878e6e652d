package logx

// nopLogger discards every entry.
type nopLogger struct{}

var _ Logger = nopLogger{}

// Nop returns a Logger that discards everything; handy in tests.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) With(...Field) Logger   { return nopLogger{} }
func (nopLogger) Sync() error            { return nil }
