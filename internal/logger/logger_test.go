package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxpay-errcode-api/internal/config"
)

func TestNewLogger_WritesUnderLogDir(t *testing.T) {
	dir := t.TempDir()
	config.C.Log.Dir = dir
	config.C.Log.Level = "debug"
	defer func() { config.C = config.Root{} }()

	log := NewLogger("errcode")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("token", "NEW_CODE").Info("unknown code recorded")

	entries, err := os.ReadDir(filepath.Join(dir, "errcode"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	config.C.Log.Dir = t.TempDir()
	config.C.Log.Level = "verbose"
	defer func() { config.C = config.Root{} }()

	assert.Equal(t, logrus.InfoLevel, NewLogger("info").GetLevel())
}
