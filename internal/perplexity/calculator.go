package perplexity

import (
	"math"

	"aiscore/internal/tokenize"
)

// Interpretation labels a perplexity band.
type Interpretation string

const (
	HighlyPredictable Interpretation = "highly-predictable"
	Predictable       Interpretation = "predictable"
	Natural           Interpretation = "natural"
	HighlyVariable    Interpretation = "highly-variable"
)

const (
	minTokens         = 5
	neutralPerplexity = 100.0
)

// Result is the predictability measurement of one passage.
type Result struct {
	Perplexity     float64        `json:"perplexity"`
	AvgLogProb     float64        `json:"avgLogProb"`
	TokenCount     int            `json:"tokenCount"`
	ScoredTokens   int            `json:"scoredTokens"`
	Interpretation Interpretation `json:"interpretation"`
}

// Calculate scores text against the model. Passages shorter than five tokens
// report perplexity 0 ("natural"), which Score treats as neutral.
func (m *Model) Calculate(text string) Result {
	words := tokenize.Words(text)
	if len(words) < minTokens {
		return Result{TokenCount: len(words), Interpretation: Natural}
	}

	sum := 0.0
	scored := 0
	for i, w := range words {
		start := max(0, i-(Order-1))
		p := m.Probability(words[start:i], w)
		if p <= 0 {
			continue
		}
		sum += math.Log2(p)
		scored++
	}
	if scored == 0 {
		return Result{
			Perplexity:     neutralPerplexity,
			TokenCount:     len(words),
			Interpretation: Interpret(neutralPerplexity),
		}
	}

	avg := sum / float64(scored)
	ppl := math.Pow(2, -avg)
	return Result{
		Perplexity:     ppl,
		AvgLogProb:     avg,
		TokenCount:     len(words),
		ScoredTokens:   scored,
		Interpretation: Interpret(ppl),
	}
}

// Interpret maps a perplexity onto its band.
func Interpret(ppl float64) Interpretation {
	switch {
	case ppl < 15:
		return HighlyPredictable
	case ppl < 30:
		return Predictable
	case ppl < 70:
		return Natural
	default:
		return HighlyVariable
	}
}

// Score converts a perplexity into an AI-likelihood in [0,100]. Lower
// perplexity reads as more machine-like; exactly 0 means "not measured".
func Score(ppl float64) int {
	switch {
	case ppl == 0:
		return 50
	case ppl < 10:
		return 95
	case ppl < 20:
		return 85
	case ppl < 30:
		return 70
	case ppl < 45:
		return 55
	case ppl < 60:
		return 40
	case ppl < 80:
		return 25
	default:
		return 10
	}
}
