package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiscore/internal/aidetect"
	"aiscore/internal/workspace"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, aidetect.DefaultWeights(), cfg.Weights)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, 400, cfg.Segment.Words)
	assert.Equal(t, 50, cfg.Segment.Overlap)
	assert.Positive(t, cfg.Segment.Workers)
	assert.NotEmpty(t, cfg.Storage.Path)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
weights:
  predictability: 0.5
  fingerprint: 0
log:
  level: warn
storage:
  path: /tmp/aiscore-test.db
segment:
  words: 200
  overlap: 20
`)
	t.Setenv("AISCORE_LOG_FORMAT", "json")
	t.Setenv("AISCORE_SERVER_ADDR", "127.0.0.1:9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Weights.Predictability)
	assert.Zero(t, cfg.Weights.Fingerprint)
	assert.Equal(t, 0.25, cfg.Weights.Dispersion)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "/tmp/aiscore-test.db", cfg.Storage.Path)
	assert.Equal(t, 200, cfg.Segment.Words)
	assert.Equal(t, 20, cfg.Segment.Overlap)
}

func TestLoadWorkspaceDefaultConfig(t *testing.T) {
	base, err := workspace.EnsureAt(t.TempDir())
	require.NoError(t, err)
	cfg, err := Load(workspace.ConfigPath(base))
	require.NoError(t, err)
	assert.Equal(t, aidetect.DefaultWeights(), cfg.Weights)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative weight": "weights:\n  entropy: -1\n",
		"zero weights":    "weights:\n  predictability: 0\n  dispersion: 0\n  entropy: 0\n  stylometry: 0\n  fingerprint: 0\n",
		"bad level":       "log:\n  level: loud\n",
		"bad format":      "log:\n  format: xml\n",
		"bad overlap":     "segment:\n  words: 10\n  overlap: 10\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
