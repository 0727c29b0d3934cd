package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "neo3d.log")

	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1, // smallest lumberjack allows
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}
	require.NoError(t, InitWithFileConfig("debug", cfg, false))
	t.Cleanup(Nop)

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("sample %d: %s", i, longMessage)
	}
	Sync()

	_, err := os.Stat(logFile)
	require.NoError(t, err, "main log file")

	files, err := os.ReadDir(tempDir)
	require.NoError(t, err)

	rotated := 0
	for _, f := range files {
		name := f.Name()
		if name == "neo3d.log" || !strings.HasPrefix(name, "neo3d") {
			continue
		}
		rotated++
		// lumberjack names backups neo3d-YYYY-MM-DDTHH-MM-SS.SSS.log
		assert.Contains(t, name, "-20", "rotated file %s", name)
	}
	assert.NotZero(t, rotated, "no rotated files found")
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()
	t.Cleanup(Nop)

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{level: "error", expected: []string{"ERROR"}, excluded: []string{"WARN", "INFO", "DEBUG"}},
		{level: "warn", expected: []string{"ERROR", "WARN"}, excluded: []string{"INFO", "DEBUG"}},
		{level: "info", expected: []string{"ERROR", "WARN", "INFO"}, excluded: []string{"DEBUG"}},
		{level: "debug", expected: []string{"ERROR", "WARN", "INFO", "DEBUG"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			cfg := FileConfig{Path: logFile, MaxSizeMB: 10, MaxBackups: 1, MaxAgeDays: 1}
			require.NoError(t, InitWithFileConfig(tt.level, cfg, false))

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			require.NoError(t, err)
			for _, exp := range tt.expected {
				assert.Contains(t, string(content), exp)
			}
			for _, exc := range tt.excluded {
				assert.NotContains(t, string(content), exc)
			}
		})
	}
}

func TestNewConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", FileConfig{}, &buf)
	require.NoError(t, err)

	l.Info("inverted", zap.Int("size", 16), zap.Float32("det", -50.89))
	l.Debug("hidden")
	_ = l.Sync()

	out := buf.String()
	assert.Contains(t, out, "inverted")
	assert.Contains(t, out, `"size": 16`)
	assert.NotContains(t, out, "hidden")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", FileConfig{}, nil)
	assert.Error(t, err)

	err = InitWithFileConfig("loud", FileConfig{}, false)
	assert.Error(t, err)
}

func TestNopBeforeInit(t *testing.T) {
	Nop()
	assert.NotPanics(t, func() {
		Info("nobody listens")
		Sugar.Debugf("nor here %d", 1)
		Sync()
	})
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/neo3d.log")
	assert.Equal(t, FileConfig{
		Path:       "/tmp/neo3d.log",
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}, cfg)
}
