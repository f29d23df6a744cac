/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import "github.com/sirupsen/logrus"

// LogrusLogger forwards log messages to a logrus logger. Notice maps onto logrus' info level
// since logrus has no separate notice level.
type LogrusLogger struct {
	logger *logrus.Logger
}

// NewLogrusLogger returns a Logger backed by `logger`. A nil `logger` uses the logrus standard logger.
func NewLogrusLogger(logger *logrus.Logger) *LogrusLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusLogger{logger: logger}
}

// IsLogLevel returns true if messages at `level` pass the logrus level filter.
func (l *LogrusLogger) IsLogLevel(level LogLevel) bool {
	return l.logger.IsLevelEnabled(toLogrusLevel(level))
}

// Error logs error message.
func (l *LogrusLogger) Error(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

// Warning logs warning message.
func (l *LogrusLogger) Warning(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

// Notice logs notice message.
func (l *LogrusLogger) Notice(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Info logs info message.
func (l *LogrusLogger) Info(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

// Debug logs debug message.
func (l *LogrusLogger) Debug(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

// Trace logs trace message.
func (l *LogrusLogger) Trace(format string, args ...interface{}) {
	l.logger.Tracef(format, args...)
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LogLevelError:
		return logrus.ErrorLevel
	case LogLevelWarning:
		return logrus.WarnLevel
	case LogLevelNotice, LogLevelInfo:
		return logrus.InfoLevel
	case LogLevelDebug:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}
