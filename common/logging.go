/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Logger is the interface used for logging in the unifont packages.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// DummyLogger does nothing.
type DummyLogger struct{}

// Error does nothing for dummy logger.
func (DummyLogger) Error(format string, args ...interface{}) {}

// Warning does nothing for dummy logger.
func (DummyLogger) Warning(format string, args ...interface{}) {}

// Notice does nothing for dummy logger.
func (DummyLogger) Notice(format string, args ...interface{}) {}

// Info does nothing for dummy logger.
func (DummyLogger) Info(format string, args ...interface{}) {}

// Debug does nothing for dummy logger.
func (DummyLogger) Debug(format string, args ...interface{}) {}

// Trace does nothing for dummy logger.
func (DummyLogger) Trace(format string, args ...interface{}) {}

// IsLogLevel always returns true for the dummy logger.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return true
}

// LogLevel is the verbosity level for logging.
type LogLevel int

// The most important logs have the lowest values, i.e. error = 0 and trace = 5.
const (
	LogLevelTrace   LogLevel = 5
	LogLevelDebug   LogLevel = 4
	LogLevelInfo    LogLevel = 3
	LogLevelNotice  LogLevel = 2
	LogLevelWarning LogLevel = 1
	LogLevelError   LogLevel = 0
)

// String returns the name of the level as used in log line prefixes.
func (level LogLevel) String() string {
	switch level {
	case LogLevelTrace:
		return "TRACE"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelNotice:
		return "NOTICE"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(level))
}

// ConsoleLogger is a logger that writes logs to 'os.Stdout'.
type ConsoleLogger struct {
	LogLevel LogLevel
}

// NewConsoleLogger creates a new console logger.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: logLevel}
}

// IsLogLevel returns true if the log level is greater or equal than `level`.
// Can be used to avoid resource intensive calls to loggers.
func (l ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs error message.
func (l ConsoleLogger) Error(format string, args ...interface{}) {
	l.output(LogLevelError, format, args...)
}

// Warning logs warning message.
func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	l.output(LogLevelWarning, format, args...)
}

// Notice logs notice message.
func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	l.output(LogLevelNotice, format, args...)
}

// Info logs info message.
func (l ConsoleLogger) Info(format string, args ...interface{}) {
	l.output(LogLevelInfo, format, args...)
}

// Debug logs debug message.
func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	l.output(LogLevelDebug, format, args...)
}

// Trace logs trace message.
func (l ConsoleLogger) Trace(format string, args ...interface{}) {
	l.output(LogLevelTrace, format, args...)
}

func (l ConsoleLogger) output(level LogLevel, format string, args ...interface{}) {
	if l.LogLevel < level {
		return
	}
	logToWriter(os.Stdout, level, format, args...)
}

// WriterLogger is the logger that writes data to the Output writer.
type WriterLogger struct {
	LogLevel LogLevel
	Output   io.Writer
}

// NewWriterLogger creates new 'writer' logger.
func NewWriterLogger(logLevel LogLevel, writer io.Writer) *WriterLogger {
	return &WriterLogger{LogLevel: logLevel, Output: writer}
}

// IsLogLevel returns true if the log level is greater or equal than `level`.
func (l WriterLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs error message.
func (l WriterLogger) Error(format string, args ...interface{}) {
	l.output(LogLevelError, format, args...)
}

// Warning logs warning message.
func (l WriterLogger) Warning(format string, args ...interface{}) {
	l.output(LogLevelWarning, format, args...)
}

// Notice logs notice message.
func (l WriterLogger) Notice(format string, args ...interface{}) {
	l.output(LogLevelNotice, format, args...)
}

// Info logs info message.
func (l WriterLogger) Info(format string, args ...interface{}) {
	l.output(LogLevelInfo, format, args...)
}

// Debug logs debug message.
func (l WriterLogger) Debug(format string, args ...interface{}) {
	l.output(LogLevelDebug, format, args...)
}

// Trace logs trace message.
func (l WriterLogger) Trace(format string, args ...interface{}) {
	l.output(LogLevelTrace, format, args...)
}

func (l WriterLogger) output(level LogLevel, format string, args ...interface{}) {
	if l.LogLevel < level || l.Output == nil {
		return
	}
	logToWriter(l.Output, level, format, args...)
}

// Log is the package-level logger. Silent unless replaced with SetLogger.
var Log Logger = DummyLogger{}

// SetLogger sets 'logger' to be used by the unifont packages.
func SetLogger(logger Logger) {
	Log = logger
}

// logToWriter writes the message prefixed by the level and the source file name and line
// of the original caller.
func logToWriter(f io.Writer, level LogLevel, format string, args ...interface{}) {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		file = "???"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	src := fmt.Sprintf("[%s] %s:%d ", level, file, line) + format + "\n"
	fmt.Fprintf(f, src, args...)
}
