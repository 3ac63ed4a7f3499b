package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected logrus.Level
	}{
		{"Trace", logrus.TraceLevel},
		{"Info", logrus.InfoLevel},
		{"Warn", logrus.WarnLevel},
		{"Error", logrus.ErrorLevel},
		{"Fatal", logrus.FatalLevel},
		{"Debug", logrus.DebugLevel},
		{"whatever", logrus.DebugLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.level))
		})
	}
}

func TestLogger_Init(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "pong.log")
	props := "logFilename=" + logFile + "\nmaxSize=1\nmaxBackups=1\nmaxAge=1\ncompress=false\nlevel=Warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logger.properties"), []byte(props), 0o644))
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})

	l := &Logger{}
	require.NoError(t, l.Init(dir))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	l.Warn("球拍卡住了")
	l.Info("not written below warn")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "球拍卡住了")
	assert.NotContains(t, string(content), "not written below warn")
	assert.Contains(t, string(content), `"level":"warning"`)
}

func TestLogger_InitMissingFile(t *testing.T) {
	err := (&Logger{}).Init(t.TempDir())
	assert.Error(t, err)
}

func TestLogger_WithMatch(t *testing.T) {
	entry := Log.WithMatch("abc-123")
	assert.Equal(t, "abc-123", entry.Data["match"])
}
