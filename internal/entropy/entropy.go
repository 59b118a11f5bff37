// Package entropy estimates the information density of a passage.
package entropy

import (
	"math"
	"sort"
	"unicode/utf8"

	"aiscore/internal/tokenize"
)

// Interpretation labels a normalized-entropy band.
type Interpretation string

const (
	LowEntropy      Interpretation = "low-entropy"
	ModerateEntropy Interpretation = "moderate-entropy"
	HighEntropy     Interpretation = "high-entropy"
)

// maxAlphabet caps the normalizing denominator at log2(256) = 8 bits.
const maxAlphabet = 256

// Metrics holds the entropy estimates of one passage, in bits.
type Metrics struct {
	CharEntropy        float64        `json:"charEntropy"`
	WordEntropy        float64        `json:"wordEntropy"`
	ConditionalEntropy float64        `json:"conditionalEntropy"`
	NormalizedEntropy  float64        `json:"normalizedEntropy"`
	Interpretation     Interpretation `json:"interpretation"`
}

// Analyze computes character, word and conditional entropy for text. The
// normalized value is the character entropy over log2 of the text length in
// runes, capped at a 256-symbol alphabet.
func Analyze(text string) Metrics {
	words := tokenize.Words(text)
	charH := CharEntropy(text)
	norm := Normalized(charH, utf8.RuneCountInString(text))
	return Metrics{
		CharEntropy:        charH,
		WordEntropy:        Shannon(words),
		ConditionalEntropy: Conditional(words),
		NormalizedEntropy:  norm,
		Interpretation:     Interpret(norm),
	}
}

// CharEntropy is the Shannon entropy of the rune distribution of text.
func CharEntropy(text string) float64 {
	counts := map[rune]int{}
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}
	return fromCounts(counts, total)
}

// Shannon is the entropy of the token distribution.
func Shannon(tokens []string) float64 {
	counts := map[string]int{}
	for _, t := range tokens {
		counts[t]++
	}
	return fromCounts(counts, len(tokens))
}

// Conditional estimates H(word | previous word) from the passage itself: each
// continuation is scored by how often it follows its one-word context within
// the same text.
func Conditional(words []string) float64 {
	if len(words) < 2 {
		return 0
	}
	contextTotals := map[string]int{}
	pairCounts := map[[2]string]int{}
	for i := 1; i < len(words); i++ {
		contextTotals[words[i-1]]++
		pairCounts[[2]string{words[i-1], words[i]}]++
	}
	sum := 0.0
	n := 0
	for i := 1; i < len(words); i++ {
		total := contextTotals[words[i-1]]
		if total == 0 {
			continue
		}
		p := float64(pairCounts[[2]string{words[i-1], words[i]}]) / float64(total)
		if p <= 0 {
			continue
		}
		sum -= math.Log2(p)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Normalized divides entropy by the largest entropy a sample of length n
// could reach, log2(min(n, 256)), clamped to [0,1].
func Normalized(h float64, n int) float64 {
	if n < 2 {
		return 0
	}
	den := math.Log2(float64(min(n, maxAlphabet)))
	return math.Min(1, math.Max(0, h/den))
}

// Interpret maps a normalized entropy onto its band.
func Interpret(normalized float64) Interpretation {
	switch {
	case normalized < 0.85:
		return LowEntropy
	case normalized < 0.95:
		return ModerateEntropy
	default:
		return HighEntropy
	}
}

// Score converts a normalized entropy into an AI-likelihood in [0,100].
func Score(normalized float64) int {
	switch {
	case normalized < 0.8:
		return 85
	case normalized < 0.85:
		return 70
	case normalized < 0.9:
		return 55
	case normalized < 0.95:
		return 40
	default:
		return 25
	}
}

func fromCounts[K comparable](counts map[K]int, total int) float64 {
	if total == 0 {
		return 0
	}
	// Summing in a fixed order keeps results bit-identical across runs.
	values := make([]int, 0, len(counts))
	for _, c := range counts {
		values = append(values, c)
	}
	sort.Ints(values)
	h := 0.0
	for _, c := range values {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
