package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/tafx/pkg/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", JSON: true, Out: &buf})
	require.NoError(t, err)

	log.WithField("function", "rsi").WithError(errors.New("TA_BAD_PARAM")).Debug("dispatch failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "rsi", entry["function"])
	assert.Equal(t, "TA_BAD_PARAM", entry["error"])
	assert.Equal(t, "dispatch failed", entry["message"])
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", JSON: true, Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, logger.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.SetLevel(logger.DebugLevel)
	assert.Equal(t, logger.DebugLevel, log.GetLevel())
	log.Debugf("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Out: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"rows": 3}).Info("loaded")
	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "[INF]")
}

func TestParseLevel(t *testing.T) {
	level, err := logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, logger.WarnLevel, level)
	assert.Equal(t, "warn", level.String())

	_, err = logger.ParseLevel("verbose")
	assert.Error(t, err)
}
