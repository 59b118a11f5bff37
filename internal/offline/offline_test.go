// Package offline holds checks that the scorer works with no network.
package offline

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiscore/internal/aidetect"
	"aiscore/internal/chunk"
	"aiscore/internal/db"
	"aiscore/internal/ingest"
)

type failTransport struct{}

func (f failTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network disabled for offline test")
}

func TestOfflineMode(t *testing.T) {
	original := http.DefaultTransport
	http.DefaultTransport = failTransport{}
	t.Cleanup(func() { http.DefaultTransport = original })

	text := strings.Repeat("This is a sentence. Furthermore, it is important to note that this one runs a little longer. ", 60)
	segments := chunk.SlidingWindow(text, 300, 30)
	require.NotEmpty(t, segments, "expected chunking to work offline")

	parsed, err := ingest.Parse("draft.txt", []byte(text))
	require.NoError(t, err)

	engine := aidetect.NewEngine()
	res := engine.Analyze(parsed.Text)
	require.False(t, res.Insufficient)
	require.NotNil(t, res.Metrics)
	assert.Positive(t, res.Metrics.Perplexity.Perplexity)
	assert.Positive(t, res.Metrics.Fingerprint.TotalMarkers)

	report := engine.AnalyzeWindows(parsed.Text, aidetect.WindowConfig{Words: 300, Overlap: 30})
	assert.Len(t, report.Windows, len(segments))

	store, err := db.OpenStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.Save(context.Background(), "draft.txt", res)
	require.NoError(t, err)
}
