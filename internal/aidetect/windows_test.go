package aidetect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeWindowsCoversDocumentInOrder(t *testing.T) {
	doc := strings.Repeat(humanText+" ", 20) + markerText()
	total := len(strings.Fields(doc))

	report := shared.AnalyzeWindows(doc, WindowConfig{Words: 100, Overlap: 20, Workers: 4})
	require.NotEmpty(t, report.Windows)

	for i, w := range report.Windows {
		assert.Equal(t, i, w.Index)
		assert.Less(t, w.StartWord, w.EndWord)
	}
	assert.Zero(t, report.Windows[0].StartWord)
	assert.Equal(t, total, report.Windows[len(report.Windows)-1].EndWord)

	assert.GreaterOrEqual(t, float64(report.MaxAIProbability), report.MeanAIProbability)
	flagged := 0
	for _, w := range report.Windows {
		if w.Result.Verdict == LikelyAI || w.Result.Verdict == DefinitelyAI {
			flagged++
		}
	}
	assert.Equal(t, flagged, report.FlaggedWindows)
}

func TestAnalyzeWindowsMatchesSequentialAnalysis(t *testing.T) {
	doc := strings.Repeat(uniformText()+" "+humanText+" ", 6)
	parallel := shared.AnalyzeWindows(doc, WindowConfig{Words: 60, Overlap: 10, Workers: 8})
	serial := shared.AnalyzeWindows(doc, WindowConfig{Words: 60, Overlap: 10, Workers: 1})
	assert.Equal(t, serial, parallel)
}

func TestAnalyzeWindowsShortInput(t *testing.T) {
	report := shared.AnalyzeWindows("a b c", DefaultWindowConfig())
	require.Len(t, report.Windows, 1)
	assert.True(t, report.Windows[0].Result.Insufficient)
	assert.Equal(t, 50, report.MaxAIProbability)
	assert.Equal(t, 50.0, report.MeanAIProbability)
	assert.Zero(t, report.FlaggedWindows)

	empty := shared.AnalyzeWindows("", WindowConfig{})
	assert.Empty(t, empty.Windows)
	assert.Zero(t, empty.MeanAIProbability)
}

func TestAnalyzeWindowsKeepsParagraphs(t *testing.T) {
	para := "The river rose after three days of rain and the town moved the sheep uphill."
	doc := strings.Repeat(para+"\n\n", 6)
	report := shared.AnalyzeWindows(doc, WindowConfig{Words: 200, Overlap: 0, Workers: 1})
	require.Len(t, report.Windows, 1)
	require.NotNil(t, report.Windows[0].Result.Metrics)
	assert.Equal(t, 6, report.Windows[0].Result.Metrics.Burstiness.ParagraphCount)
}
