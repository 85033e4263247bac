package logger

import "log/slog"

type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Fatalw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) Fatal(msg string, args ...any) {
	l.logger.Error(msg, args...)
	panic("fatal: " + msg)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}

func (l *slogLogger) Debugw(msg string, kv ...interface{}) { l.logger.Debug(msg, kv...) }
func (l *slogLogger) Infow(msg string, kv ...interface{})  { l.logger.Info(msg, kv...) }
func (l *slogLogger) Warnw(msg string, kv ...interface{})  { l.logger.Warn(msg, kv...) }
func (l *slogLogger) Errorw(msg string, kv ...interface{}) { l.logger.Error(msg, kv...) }

func (l *slogLogger) Fatalw(msg string, kv ...interface{}) {
	l.logger.Error(msg, kv...)
	panic("fatal: " + msg)
}

type nopLogger struct{}

// NewNopLogger discards everything. Intended for tests.
func NewNopLogger() Interface { return nopLogger{} }

func (nopLogger) Debug(string, ...any)           {}
func (nopLogger) Info(string, ...any)            {}
func (nopLogger) Warn(string, ...any)            {}
func (nopLogger) Error(string, ...any)           {}
func (nopLogger) Fatal(string, ...any)           {}
func (n nopLogger) With(...any) Interface        { return n }
func (n nopLogger) Named(string) Interface       { return n }
func (nopLogger) Debugw(string, ...interface{})  {}
func (nopLogger) Infow(string, ...interface{})   {}
func (nopLogger) Warnw(string, ...interface{})   {}
func (nopLogger) Errorw(string, ...interface{})  {}
func (nopLogger) Fatalw(string, ...interface{})  {}
