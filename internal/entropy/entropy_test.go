package entropy

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aiscore/internal/tokenize"
)

func TestCharEntropy(t *testing.T) {
	assert.Zero(t, CharEntropy(""))
	assert.Zero(t, CharEntropy("aaaa"))
	assert.InDelta(t, 1.0, CharEntropy("abab"), 1e-12)
	assert.InDelta(t, 2.0, CharEntropy("abcd"), 1e-12)
}

func TestShannonOverTokens(t *testing.T) {
	assert.InDelta(t, 2.0, Shannon([]string{"a", "b", "c", "d"}), 1e-12)
	assert.InDelta(t, 0.811, Shannon([]string{"a", "a", "a", "b"}), 0.001)
}

func TestConditionalFromSameDocument(t *testing.T) {
	// "a" is always followed by "b": zero surprise.
	assert.Zero(t, Conditional([]string{"a", "b", "a", "b", "a", "b"}))
	// "x" is followed by "y" and "z" equally; "y" always by "x".
	assert.InDelta(t, 2.0/3.0, Conditional([]string{"x", "y", "x", "z"}), 1e-12)
	assert.Zero(t, Conditional([]string{"solo"}))
}

func TestNormalized(t *testing.T) {
	assert.Zero(t, Normalized(3, 1))
	assert.InDelta(t, 1.0, Normalized(2, 4), 1e-12)
	assert.InDelta(t, 0.5, Normalized(4, 1000), 1e-12)
	assert.Equal(t, 1.0, Normalized(9, 10000))
}

func TestAnalyzeRepetitiveTextIsLowEntropy(t *testing.T) {
	m := Analyze(strings.Repeat("the report shows the trend. ", 20))
	assert.Less(t, m.NormalizedEntropy, 0.85)
	assert.Equal(t, LowEntropy, m.Interpretation)
	assert.Equal(t, 85, Score(m.NormalizedEntropy))
}

func TestAnalyzeNormalizesCharacterEntropy(t *testing.T) {
	text := "He walked to the station, bought coffee, and missed his train by one minute. " +
		"The delay made him call his sister, and they argued briefly about their father. " +
		"By noon he had made up his mind to visit home. Rain started around dinner and the streets filled with umbrellas."
	m := Analyze(text)
	require.Greater(t, len(text), maxAlphabet)
	assert.InDelta(t, m.CharEntropy/8, m.NormalizedEntropy, 1e-12)
	assert.NotEqual(t, Normalized(m.WordEntropy, len(tokenize.Words(text))), m.NormalizedEntropy)
	assert.Less(t, m.NormalizedEntropy, 0.8)
	assert.Equal(t, LowEntropy, m.Interpretation)
	assert.Equal(t, 85, Score(m.NormalizedEntropy))
}

func TestAnalyzeShortTextUsesRuneLength(t *testing.T) {
	// Every rune appears once: entropy equals log2 of the length.
	m := Analyze("abcdefghijklmnopqrstuvwxyz")
	assert.InDelta(t, 1.0, m.NormalizedEntropy, 1e-9)
	assert.Equal(t, HighEntropy, m.Interpretation)
	assert.Equal(t, 25, Score(m.NormalizedEntropy))

	// Multi-byte runes count once each.
	m = Analyze("éèêë")
	assert.InDelta(t, 1.0, m.NormalizedEntropy, 1e-9)
}

func TestAnalyzeDistinctWords(t *testing.T) {
	m := Analyze("Every single word in this short line appears exactly once without repeats.")
	assert.InDelta(t, math.Log2(12), m.WordEntropy, 1e-9)
	assert.Zero(t, m.ConditionalEntropy)
}

func TestScoreBands(t *testing.T) {
	assert.Equal(t, 85, Score(0.79))
	assert.Equal(t, 70, Score(0.8))
	assert.Equal(t, 55, Score(0.85))
	assert.Equal(t, 40, Score(0.9))
	assert.Equal(t, 25, Score(0.95))
}

func TestInterpretBands(t *testing.T) {
	assert.Equal(t, LowEntropy, Interpret(0.849))
	assert.Equal(t, ModerateEntropy, Interpret(0.85))
	assert.Equal(t, HighEntropy, Interpret(0.95))
}
