package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_NoFlag_LeavesConfigAlone(t *testing.T) {
	restoreArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "maumdiary.db", cfg.DatabasePath)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"/tmp/json.db","log_level":"warn"}`), 0o600))

	restoreArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/tmp/json.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"debug"}`), 0o600))

	restoreArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "maumdiary.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseJson_UnreadableFilePanics(t *testing.T) {
	restoreArgs(t, "-c", filepath.Join(t.TempDir(), "missing.json"))

	cfg := &Config{}
	require.Panics(t, func() { parseJson(cfg) })
}
