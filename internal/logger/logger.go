package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger is a chainable wrapper around slog. Scope, file, and function
// attributes accumulate as the logger is passed down a call path.
type Logger struct {
	logger *slog.Logger
}

func New(scope string) Logger {
	return Logger{
		logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})).With("scope", scope),
	}
}

func (l Logger) File(name string) Logger {
	return Logger{logger: l.logger.With("file", name)}
}

func (l Logger) Function(name string) Logger {
	return Logger{logger: l.logger.With("function", name)}
}

func (l Logger) With(args ...any) Logger {
	return Logger{logger: l.logger.With(args...)}
}

func (l Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs msg and returns it as an error.
func (l Logger) Error(msg string, args ...any) error {
	l.logger.Error(msg, args...)
	return fmt.Errorf("%s", msg)
}

// Err logs msg with the underlying error and returns the wrapped error.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Er is the statement form of Err for call sites that do not propagate.
func (l Logger) Er(msg string, err error, args ...any) {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
}

// ErrMsg logs msg without an underlying error and returns it as an error.
func (l Logger) ErrMsg(msg string, args ...any) error {
	l.logger.Error(msg, args...)
	return fmt.Errorf("%s", msg)
}

// ErMsg is the statement form of ErrMsg.
func (l Logger) ErMsg(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
