// Package zaplog adapts a go.uber.org/zap logger to the client's
// RequestLogger interface.
package zaplog

import "go.uber.org/zap"

// Logger forwards formatted log messages to a zap logger. It satisfies
// the client package's RequestLogger interface.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps the given zap logger. The caller keeps ownership of the logger
// and its sync lifecycle.
func New(logger *zap.Logger) *Logger {
	return &Logger{sugar: logger.Sugar()}
}

func (l *Logger) Errorf(format string, v ...any) {
	l.sugar.Errorf(format, v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.sugar.Debugf(format, v...)
}
