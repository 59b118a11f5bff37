// Package perplexity scores how predictable a passage is under a small trigram
// language model trained once over a fixed reference corpus.
package perplexity

import (
	"math"
	"strings"

	"aiscore/internal/tokenize"
)

const (
	// Order is the n-gram order; contexts hold at most Order-1 words.
	Order = 3
	// Discount is the absolute discount subtracted from every observed count.
	Discount = 0.75
	// UnigramSmoothing is the add-k constant of the base distribution.
	UnigramSmoothing = 0.1
)

// Model is an absolute-discounting trigram model. It is immutable once Train
// returns and safe for concurrent readers.
type Model struct {
	next         map[string]map[string]int
	totals       map[string]int
	continuation map[string]int
	bigramTypes  int
	vocab        map[string]struct{}
	tokens       int
}

// Train builds a model from corpus, one sentence per entry.
func Train(corpus []string) *Model {
	m := &Model{
		next:         map[string]map[string]int{},
		totals:       map[string]int{},
		continuation: map[string]int{},
		vocab:        map[string]struct{}{},
	}
	seenBigram := map[string]struct{}{}
	for _, sentence := range corpus {
		words := tokenize.Words(sentence)
		for i, w := range words {
			m.vocab[w] = struct{}{}
			m.tokens++
			for n := 1; n < Order && n <= i; n++ {
				m.add(contextKey(words[i-n:i]), w)
			}
			if i > 0 {
				bigram := words[i-1] + " " + w
				if _, ok := seenBigram[bigram]; !ok {
					seenBigram[bigram] = struct{}{}
					m.continuation[w]++
					m.bigramTypes++
				}
			}
		}
	}
	return m
}

// NewDefault trains a model over ReferenceCorpus.
func NewDefault() *Model {
	return Train(ReferenceCorpus)
}

func (m *Model) add(key, word string) {
	counts, ok := m.next[key]
	if !ok {
		counts = map[string]int{}
		m.next[key] = counts
	}
	counts[word]++
	m.totals[key]++
}

// VocabularySize is the number of distinct training words.
func (m *Model) VocabularySize() int { return len(m.vocab) }

// TokenCount is the number of training tokens.
func (m *Model) TokenCount() int { return m.tokens }

// Probability returns P(word | context) using the last Order-1 words of
// context. Contexts never seen in training back off to the next shorter one.
// The result is always positive.
func (m *Model) Probability(context []string, word string) float64 {
	if len(context) > Order-1 {
		context = context[len(context)-(Order-1):]
	}
	return m.prob(context, word)
}

// prob recurses at most Order-1 times: every call drops one context word.
func (m *Model) prob(context []string, word string) float64 {
	if len(context) == 0 {
		return m.unigram(word)
	}
	key := contextKey(context)
	counts, ok := m.next[key]
	if !ok {
		return m.prob(context[1:], word)
	}
	total := float64(m.totals[key])
	lower := m.prob(context[1:], word)
	discounted := math.Max(float64(counts[word])-Discount, 0) / total
	backoffMass := Discount * float64(len(counts)) / total
	return discounted + backoffMass*lower
}

// unigram is the add-k smoothed continuation distribution; one extra slot is
// reserved for words outside the vocabulary.
func (m *Model) unigram(word string) float64 {
	den := float64(m.bigramTypes) + UnigramSmoothing*float64(len(m.vocab)+1)
	return (float64(m.continuation[word]) + UnigramSmoothing) / den
}

func contextKey(words []string) string {
	return strings.Join(words, " ")
}
