package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"aiscore/internal/aidetect"
)

func TestEnsureAtCreatesLayout(t *testing.T) {
	base := filepath.Join(t.TempDir(), BaseDirName)
	root, err := EnsureAt(base)
	require.NoError(t, err)
	assert.Equal(t, base, root)

	for _, p := range []string{filepath.Join(base, "configs"), ReportsDir(base), filepath.Join(base, "data")} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	raw, err := os.ReadFile(ConfigPath(base))
	require.NoError(t, err)
	var got Defaults
	require.NoError(t, yaml.Unmarshal(raw, &got))
	assert.Equal(t, DefaultSettings(), got)
	assert.Equal(t, aidetect.DefaultWeights(), got.Weights)
	assert.Equal(t, filepath.Join(base, "data", "history.db"), HistoryPath(base))
}

func TestEnsureAtKeepsExistingConfig(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "configs"), 0o755))
	custom := []byte("log:\n  level: debug\n")
	require.NoError(t, os.WriteFile(ConfigPath(base), custom, 0o644))

	_, err := EnsureAt(base)
	require.NoError(t, err)
	raw, err := os.ReadFile(ConfigPath(base))
	require.NoError(t, err)
	assert.Equal(t, custom, raw)
}

func TestSaveReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	res := aidetect.Result{AIProbability: 61, HumanProbability: 39, Verdict: aidetect.PossiblyAI}

	path, err := SaveReport(dir, "/tmp/drafts/My Essay.docx", res)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "My_Essay-"))
	assert.Equal(t, ".json", filepath.Ext(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var got aidetect.Result
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 61, got.AIProbability)

	again, err := SaveReport(dir, "/tmp/drafts/My Essay.docx", res)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	other, err := SaveReport(dir, "/tmp/other/My Essay.docx", res)
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestSanitizeSourceName(t *testing.T) {
	assert.Equal(t, "stdin", sanitizeSourceName("-"))
	assert.Equal(t, "stdin", sanitizeSourceName(""))
	assert.Equal(t, "notes", sanitizeSourceName("../notes.md"))
	assert.Equal(t, "a_b", sanitizeSourceName("a b.txt"))
}
