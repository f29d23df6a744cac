/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(LogLevelInfo, &buf)

	logger.Error("error %d", 1)
	logger.Info("info %d", 2)
	logger.Debug("debug %d", 3)
	logger.Trace("trace %d", 4)

	out := buf.String()
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "error 1")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "info 2")
	assert.NotContains(t, out, "debug 3")
	assert.NotContains(t, out, "trace 4")
	assert.Equal(t, 2, strings.Count(out, "\n"))

	// Source location of the caller, not of the logger.
	assert.Contains(t, out, "logging_test.go:")

	assert.True(t, logger.IsLogLevel(LogLevelInfo))
	assert.False(t, logger.IsLogLevel(LogLevelDebug))
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(DummyLogger{})

	var buf bytes.Buffer
	SetLogger(NewWriterLogger(LogLevelDebug, &buf))
	Log.Debug("glyph %d", 17)
	assert.Contains(t, buf.String(), "glyph 17")
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	lr := logrus.New()
	lr.SetOutput(&buf)
	lr.SetLevel(logrus.DebugLevel)

	logger := NewLogrusLogger(lr)
	logger.Debug("kern subtable %d", 0)
	logger.Trace("hidden")

	assert.Contains(t, buf.String(), "kern subtable 0")
	assert.NotContains(t, buf.String(), "hidden")
	assert.True(t, logger.IsLogLevel(LogLevelDebug))
	assert.False(t, logger.IsLogLevel(LogLevelTrace))
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "WARNING", LogLevelWarning.String())
	assert.Equal(t, "LEVEL(9)", LogLevel(9).String())
}
