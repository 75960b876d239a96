package logger

import (
	"os"
	"path/filepath"
	"testing"

	"tour-insight/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNew_FileOutputAndSetLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log := New(config.LogConfig{
		Level:  "info",
		Format: "json",
		Output: "file",
		File:   path,
	})

	log.Info("第一条")
	log.Debug("不会写入")

	log.SetLevel("error")
	assert.Equal(t, zapcore.ErrorLevel, log.Level())
	log.Warnf("级别提高后也不会写入: %d", 1)
	log.Errorf("第二条: %d", 2)

	require.NoError(t, log.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "第一条")
	assert.Contains(t, text, "第二条: 2")
	assert.NotContains(t, text, "不会写入")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Infof("丢弃 %s", "输出")
	log.SetLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, log.Level())
	assert.NoError(t, log.Close())
}
