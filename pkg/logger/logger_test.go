package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Stdout", func(t *testing.T) {
		var console bytes.Buffer
		stdout = &console
		t.Cleanup(func() { stdout = os.Stdout })

		log, err := New("", "debug")
		require.NoError(t, err)
		log.Debug("sweep started")
		assert.NoError(t, log.Close())
		assert.Contains(t, console.String(), "sweep started")
	})

	t.Run("File", func(t *testing.T) {
		var console bytes.Buffer
		stdout = &console
		t.Cleanup(func() { stdout = os.Stdout })

		path := filepath.Join(t.TempDir(), "service.log")
		log, err := New(path, "info")
		require.NoError(t, err)

		log.Info("booking id=%s created", "b-1")
		require.NoError(t, log.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "booking id=b-1 created")
		assert.Empty(t, console.String(), "file output replaces stdout")
	})

	t.Run("UnknownLevelFallsBackToInfo", func(t *testing.T) {
		log, err := New("", "verbose")
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, log.zl.GetLevel())
	})

	t.Run("BadPath", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), "info")
		assert.Error(t, err)
	})
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.WarnLevel)

	log.Info("hidden")
	log.Warn("slot %s is full", "10:00")
	log.Error("store failed: %v", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "slot 10:00 is full")
	assert.Contains(t, out, "store failed: timeout")
}
