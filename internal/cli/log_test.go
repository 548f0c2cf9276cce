package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	require.NotNil(t, logger)

	logger.Info("test message")
	assert.Contains(t, buf.String(), "test message")
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "warn at error level",
			level:   log.ErrorLevel,
			logFunc: func(l *log.Logger) { l.Warn("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	prog.done("Built dataset")

	assert.Contains(t, buf.String(), "Built dataset")
	assert.Contains(t, buf.String(), "ms)", "elapsed time")
}

func TestWithLogger(t *testing.T) {
	logger := log.Default()
	ctx := withLogger(context.Background(), logger)
	assert.Same(t, logger, loggerFromContext(ctx))
}

func TestLoggerFromContextDefault(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}

func TestLoggerFromContextWithValue(t *testing.T) {
	var buf bytes.Buffer
	customLogger := newLogger(&buf, log.InfoLevel)

	retrieved := loggerFromContext(withLogger(context.Background(), customLogger))
	require.Same(t, customLogger, retrieved)

	retrieved.Info("test")
	assert.NotZero(t, buf.Len(), "custom logger writes to its buffer")
}
