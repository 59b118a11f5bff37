package perplexity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilityIsADistribution(t *testing.T) {
	m := NewDefault()
	vocab := make([]string, 0, len(m.vocab))
	for w := range m.vocab {
		vocab = append(vocab, w)
	}
	sort.Strings(vocab)

	for _, ctx := range [][]string{nil, {"the"}, {"of", "the"}, {"never", "seen"}} {
		sum := m.Probability(ctx, "qwxzy-not-a-word")
		for _, w := range vocab {
			sum += m.Probability(ctx, w)
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "context %v", ctx)
	}
}

func TestProbabilityPositiveForUnseenWords(t *testing.T) {
	m := NewDefault()
	assert.Greater(t, m.Probability([]string{"zebra", "quantum"}, "flibbertigibbet"), 0.0)
}

func TestProbabilityPrefersObservedContinuation(t *testing.T) {
	m := NewDefault()
	seen := m.Probability([]string{"the", "results"}, "of")
	unseen := m.Probability([]string{"the", "results"}, "dog")
	assert.Greater(t, seen, unseen)
}

func TestProbabilityUsesOnlyLastTwoWords(t *testing.T) {
	m := NewDefault()
	long := m.Probability([]string{"anything", "at", "the", "end"}, "of")
	short := m.Probability([]string{"the", "end"}, "of")
	assert.Equal(t, short, long)
}

func TestTrainIsDeterministic(t *testing.T) {
	a := NewDefault()
	b := NewDefault()
	require.Equal(t, a.VocabularySize(), b.VocabularySize())
	require.Equal(t, a.TokenCount(), b.TokenCount())
	text := "The results of the study indicate a relationship between the variables."
	assert.Equal(t, a.Calculate(text), b.Calculate(text))
}

func TestTrainEmptyCorpus(t *testing.T) {
	m := Train(nil)
	assert.Zero(t, m.VocabularySize())
	res := m.Calculate("one two three four five six")
	assert.Greater(t, res.Perplexity, 0.0)
}
