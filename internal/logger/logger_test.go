package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoprim/internal/logger"
)

func TestNew(t *testing.T) {
	require.NotNil(t, logger.New("", "info"))
	require.NotNil(t, logger.Discard())
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("warn", &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "WARN: warn message")
	assert.Contains(t, out, "ERROR: error message")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("loud", &buf)
	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithTarget(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("info", &buf)

	log.WithTarget("bench").Info("run started")

	assert.Contains(t, buf.String(), "INFO: [bench] run started")
}

func TestFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("info", &buf)

	log.Info("sorted", logger.WithField("zeta", 3), logger.WithField("alpha", "quick"))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "{alpha=quick, zeta=3}"), line)
}

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput("info", &buf)

	log.Success("verified")

	assert.Contains(t, buf.String(), "✅ verified")
}

func TestDiscardIsSilent(t *testing.T) {
	log := logger.Discard()
	assert.NotPanics(t, func() {
		log.Error("nothing to see")
		log.WithTarget("x").Success("still nothing")
	})
}
