package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiscore/internal/aidetect"
	"aiscore/internal/db"
	"aiscore/internal/perplexity"
)

var engine = aidetect.NewEngine()

const sample = "It is important to note that the results matter. Furthermore, the data shows growth. In conclusion, we must act now."

func newTestServer(t *testing.T, withStore bool) *Server {
	t.Helper()
	opts := Options{Engine: engine, Windows: aidetect.WindowConfig{Words: 12, Overlap: 2, Workers: 2}}
	if withStore {
		store, err := db.OpenStore(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		opts.Store = store
	}
	return New(opts)
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, perplexity.CorpusVersion, body["corpusVersion"])
}

func TestAnalyzeReturnsResult(t *testing.T) {
	s := newTestServer(t, false)
	rec := do(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{Text: sample})
	require.Equal(t, http.StatusOK, rec.Code)

	var got analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, engine.Analyze(sample), got.Result)
	assert.Empty(t, got.ID)
	assert.Nil(t, got.Windows)

	metricsRec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "aiscore_analyses_total")
}

func TestAnalyzeEmptyTextIsNeutral(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodPost, "/v1/analyze", analyzeRequest{Text: "  "})
	require.Equal(t, http.StatusOK, rec.Code)
	var got analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Insufficient)
	assert.Equal(t, aidetect.Uncertain, got.Verdict)
}

func TestAnalyzeWindowed(t *testing.T) {
	rec := do(t, newTestServer(t, false), http.MethodPost, "/v1/analyze", analyzeRequest{Text: sample, Windowed: true})
	require.Equal(t, http.StatusOK, rec.Code)
	var got analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Windows)
	assert.NotEmpty(t, got.Windows.Windows)
}

func TestAnalyzeRejectsBadBodies(t *testing.T) {
	s := newTestServer(t, false)
	rec := do(t, s, http.MethodPost, "/v1/analyze", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	huge := `{"text":"` + strings.Repeat("a ", MaxBodyBytes) + `"}`
	rec = do(t, s, http.MethodPost, "/v1/analyze", huge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHistoryWithoutStore(t *testing.T) {
	s := newTestServer(t, false)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, s, http.MethodGet, "/v1/analyses", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{Text: sample, Store: true}).Code)
}

func TestStoreListAndGet(t *testing.T) {
	s := newTestServer(t, true)
	rec := do(t, s, http.MethodPost, "/v1/analyze", analyzeRequest{Text: sample, Store: true, Source: "essay.txt"})
	require.Equal(t, http.StatusOK, rec.Code)
	var saved analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	rec = do(t, s, http.MethodGet, "/v1/analyses?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Analyses []db.Record `json:"analyses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Analyses, 1)
	assert.Equal(t, saved.ID, list.Analyses[0].ID)
	assert.Equal(t, "essay.txt", list.Analyses[0].Source)

	rec = do(t, s, http.MethodGet, "/v1/analyses/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var one db.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	require.NotNil(t, one.Result)
	assert.Equal(t, saved.Result, *one.Result)

	assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, "/v1/analyses/missing", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/v1/analyses?limit=abc", nil).Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestServer(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	cancel()
	assert.NoError(t, <-done)
}
