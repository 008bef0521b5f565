package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Log = newDiscard() })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Component("horde").WithField("count", 30).Info("spawned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "horde", entry["component"])
	assert.Equal(t, "spawned", entry["msg"])
	assert.EqualValues(t, 30, entry["count"])
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "loud", Output: &buf})
	t.Cleanup(func() { Log = newDiscard() })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}

func TestDefaultLoggerDiscards(t *testing.T) {
	l := newDiscard()
	assert.NotPanics(t, func() { l.Info("nothing") })
}
