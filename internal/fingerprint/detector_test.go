package fingerprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFlagsSaturatedMarkerText(t *testing.T) {
	unit := "It is important to note that the results matter. Furthermore, the data shows growth. In conclusion, we must act now. "
	res := Detect(strings.Repeat(unit, 8))

	assert.Greater(t, res.Density, 5.0)
	assert.GreaterOrEqual(t, res.NormalizedScore, 90)
	assert.True(t, res.IsHighDensity)
	assert.Equal(t, VeryHigh, res.Interpretation)
	assert.Positive(t, res.WordMarkers)
	assert.Positive(t, res.PhraseMarkers)
	assert.Positive(t, res.PatternMarkers)
	assert.Equal(t, res.WordMarkers+res.PhraseMarkers+res.PatternMarkers, res.TotalMarkers)
	assert.Len(t, res.Matches, res.TotalMarkers)
}

func TestDetectDoesNotOverFlagNormalDraft(t *testing.T) {
	parts := []string{
		"He walked to the station, bought coffee, and missed his train by one minute.",
		"The delay made him call his sister, and they argued briefly about their father.",
		"By noon he had made up his mind to visit home.",
		"Rain started around dinner and the streets filled with umbrellas.",
	}
	res := Detect(strings.Join(parts, "\n\n"))
	assert.Zero(t, res.TotalMarkers)
	assert.Equal(t, VeryFew, res.Interpretation)
	assert.Zero(t, res.NormalizedScore)
	assert.False(t, res.IsHighDensity)
}

func TestDetectIsCaseInsensitiveAndWholeWord(t *testing.T) {
	res := Detect("MOREOVER the plan works. Moreoverish is not a word, nor is undelved.")
	require.Equal(t, 1, res.WordMarkers)
	assert.Equal(t, "moreover", res.Matches[0].Marker)
	assert.Equal(t, 0, res.Matches[0].Position)
}

func TestDetectRecordsContextWindow(t *testing.T) {
	prefix := strings.Repeat("x", 60) + " "
	text := prefix + "we delve deeper " + strings.Repeat("y", 60)
	res := Detect(text)
	require.Len(t, res.Matches, 1)
	m := res.Matches[0]
	assert.Equal(t, WordMarker, m.Category)
	assert.Equal(t, len(prefix)+3, m.Position)
	assert.Contains(t, m.Context, "we delve deeper")
	assert.Less(t, len(m.Context), len(text))
}

func TestDetectMatchesAreOrderedByPosition(t *testing.T) {
	res := Detect("In summary, this robust tapestry is a testament to effort.")
	require.NotEmpty(t, res.Matches)
	for i := 1; i < len(res.Matches); i++ {
		assert.LessOrEqual(t, res.Matches[i-1].Position, res.Matches[i].Position)
	}
}

func TestDedupeTreatsRepeatsAsOne(t *testing.T) {
	got := dedupe([]string{"meticulous", "Meticulous", " meticulous ", "tapestry", ""}, normalizeLiteral)
	assert.Equal(t, []string{"meticulous", "tapestry"}, got)
	assert.Len(t, compileLiterals([]string{"meticulous", "meticulous", "meticulous"}, WordMarker), 1)
}

func TestDetectEmptyText(t *testing.T) {
	res := Detect("")
	assert.Zero(t, res.Density)
	assert.Zero(t, res.WordCount)
	assert.NotNil(t, res.Matches)
}

func TestInterpretBands(t *testing.T) {
	assert.Equal(t, VeryFew, Interpret(0.49))
	assert.Equal(t, Few, Interpret(0.5))
	assert.Equal(t, Moderate, Interpret(1.5))
	assert.Equal(t, Many, Interpret(3))
	assert.Equal(t, VeryHigh, Interpret(5))
}
