package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"filechooser/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logging is the subset of logger behaviour handed to components.
type Logging interface {
	Debug(msg string)
	Debugf(format string, args ...interface{})
	Info(msg string)
	Infof(format string, args ...interface{})
	Warn(msg string)
	Warnf(format string, args ...interface{})
	Error(msg string)
	Errorf(format string, args ...interface{})
	With(fields ...Field) Logging
}

// Logger wraps a logrus logger.
type Logger struct {
	base *logrus.Logger
	file *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput directs log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.base.SetOutput(w)
	}
}

// WithJSON switches to JSON lines.
func WithJSON() Option {
	return func(l *Logger) {
		l.base.SetFormatter(jsonFormatter())
	}
}

// WithFile tees log lines to the given file in addition to stderr.
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			l.base.WithError(err).Warn("could not open log file")
			return
		}
		l.file = f
		l.base.SetOutput(io.MultiWriter(os.Stderr, f))
	}
}

func textFormatter() logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05",
		DisableColors:    true,
		QuoteEmptyFields: true,
	}
}

func jsonFormatter() logrus.Formatter {
	return &logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	}
}

// NewLogger creates a logger writing text lines to stderr unless overridden.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetFormatter(textFormatter())
	// Debug lines are gated by SetDebug, not by the logrus level.
	base.SetLevel(logrus.DebugLevel)

	l := &Logger{base: base}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetFormat selects "json" or "text" output on the package logger.
func SetFormat(format string) {
	if format == "json" {
		logger.base.SetFormatter(jsonFormatter())
		return
	}
	logger.base.SetFormatter(textFormatter())
}

// SetOutput redirects the package logger.
func SetOutput(w io.Writer) {
	logger.base.SetOutput(w)
}

// SetDebug toggles debug output for every logger.
func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// Close releases a log file opened by WithFile.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) entry() *Entry {
	return &Entry{e: logrus.NewEntry(l.base)}
}

func (l *Logger) Debug(msg string)                          { l.entry().Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry().Debugf(format, args...) }
func (l *Logger) Info(msg string)                           { l.entry().Info(msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry().Infof(format, args...) }
func (l *Logger) Warn(msg string)                           { l.entry().Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry().Warnf(format, args...) }
func (l *Logger) Error(msg string)                          { l.entry().Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }

// With returns an entry carrying the given fields.
func (l *Logger) With(fields ...Field) Logging {
	return l.entry().With(fields...)
}

// WithContext is reserved for request-scoped fields; it currently adds none.
func (l *Logger) WithContext(ctx context.Context) Logging {
	return l.entry()
}

// Entry is a logger with fields attached.
type Entry struct {
	e *logrus.Entry
}

func (e *Entry) Debug(msg string) {
	if isDebug.Load() {
		e.e.Debug(msg)
	}
}

func (e *Entry) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		e.e.Debugf(format, args...)
	}
}

func (e *Entry) Info(msg string)                           { e.e.Info(msg) }
func (e *Entry) Infof(format string, args ...interface{})  { e.e.Infof(format, args...) }
func (e *Entry) Warn(msg string)                           { e.e.Warn(msg) }
func (e *Entry) Warnf(format string, args ...interface{})  { e.e.Warnf(format, args...) }
func (e *Entry) Error(msg string)                          { e.e.Error(msg) }
func (e *Entry) Errorf(format string, args ...interface{}) { e.e.Errorf(format, args...) }

// With returns a new entry with the extra fields.
func (e *Entry) With(fields ...Field) Logging {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Entry{e: e.e.WithFields(lf)}
}

// LogWithFields returns an entry on the package logger.
func LogWithFields(fields ...Field) Logging {
	return logger.With(fields...)
}

// LogWithError attaches err and, for application errors, its kind and subject.
func LogWithError(err error) Logging {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}
	fields := []Field{F("error", err.Error()), F("error_kind", errors.KindOf(err).String())}

	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	var filterErr *errors.FilterError
	switch {
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()))
	case errors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case errors.As(err, &filterErr):
		fields = append(fields, F("filter", filterErr.FilterName()))
	}
	return logger.With(fields...)
}

// LogError logs err at error level with msg.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Info(msg string) {
	logger.Info(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Debug(msg + ": " + fmt.Sprint(args...))
		return
	}
	logger.Debug(msg)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Error(msg + ": " + fmt.Sprint(args...))
		return
	}
	logger.Error(msg)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	if len(args) > 0 {
		logger.Warn(msg + ": " + fmt.Sprint(args...))
		return
	}
	logger.Warn(msg)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
