// Package burstiness measures how much sentence and paragraph lengths vary.
// Human prose mixes short and long sentences; generated prose tends not to.
package burstiness

import (
	"math"
	"sort"

	"aiscore/internal/tokenize"
)

// Interpretation labels a burstiness-index band.
type Interpretation string

const (
	VeryUniform Interpretation = "very uniform — AI-typical"
	Low         Interpretation = "low — likely AI/heavily edited"
	Moderate    Interpretation = "moderate"
	Good        Interpretation = "good — natural human"
	High        Interpretation = "high — casual human"
)

// HistogramBins is the number of equal-width sentence-length bins.
const HistogramBins = 10

// Summary is a five-number-style description of sentence lengths.
type Summary struct {
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Median float64 `json:"median"`
	Mode   int     `json:"mode"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// Metrics holds the dispersion measurements of one passage.
type Metrics struct {
	SentenceCount     int            `json:"sentenceCount"`
	SentenceLengths   []int          `json:"sentenceLengths"`
	Mean              float64        `json:"mean"`
	StdDev            float64        `json:"stdDev"`
	BurstinessIndex   float64        `json:"burstinessIndex"`
	Summary           Summary        `json:"summary"`
	Histogram         []int          `json:"histogram"`
	ParagraphCount    int            `json:"paragraphCount"`
	ParagraphMean     float64        `json:"paragraphMean"`
	ParagraphStdDev   float64        `json:"paragraphStdDev"`
	Interpretation    Interpretation `json:"interpretation"`
	IsLowBurstiness   bool           `json:"isLowBurstiness"`
	IsHumanBurstiness bool           `json:"isHumanBurstiness"`
}

// Analyze computes sentence- and paragraph-length dispersion for text.
func Analyze(text string) Metrics {
	lengths := make([]int, 0)
	for _, s := range tokenize.Sentences(text) {
		n := tokenize.WordCount(s)
		if n > 0 {
			lengths = append(lengths, n)
		}
	}
	paraLengths := make([]int, 0)
	for _, p := range tokenize.Paragraphs(text) {
		if n := tokenize.WordCount(p); n > 0 {
			paraLengths = append(paraLengths, n)
		}
	}

	mean, sd := meanStd(lengths)
	cv := 0.0
	if mean > 0 {
		cv = sd / mean
	}
	pMean, pSD := meanStd(paraLengths)

	return Metrics{
		SentenceCount:     len(lengths),
		SentenceLengths:   lengths,
		Mean:              mean,
		StdDev:            sd,
		BurstinessIndex:   cv,
		Summary:           summarize(lengths),
		Histogram:         histogram(lengths, HistogramBins),
		ParagraphCount:    len(paraLengths),
		ParagraphMean:     pMean,
		ParagraphStdDev:   pSD,
		Interpretation:    Interpret(cv),
		IsLowBurstiness:   cv < 0.35,
		IsHumanBurstiness: cv > 0.5,
	}
}

// Interpret maps a burstiness index (coefficient of variation) onto its band.
func Interpret(cv float64) Interpretation {
	switch {
	case cv < 0.25:
		return VeryUniform
	case cv < 0.35:
		return Low
	case cv < 0.5:
		return Moderate
	case cv < 0.7:
		return Good
	default:
		return High
	}
}

// Score converts a coefficient of variation into an AI-likelihood in
// [0,100]. It is non-increasing in cv.
func Score(cv float64) int {
	switch {
	case cv < 0.2:
		return 90
	case cv < 0.3:
		return 75
	case cv < 0.4:
		return 60
	case cv < 0.5:
		return 45
	case cv < 0.6:
		return 30
	case cv < 0.75:
		return 20
	default:
		return 10
	}
}

// meanStd returns the mean and population standard deviation.
func meanStd(values []int) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += float64(v)
	}
	mean /= float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

func summarize(lengths []int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}
	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)
	return Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: percentile(sorted, 0.5),
		Mode:   mode(sorted),
		Q1:     percentile(sorted, 0.25),
		Q3:     percentile(sorted, 0.75),
	}
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []int, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return float64(sorted[lo])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[hi]-sorted[lo])
}

// mode returns the most frequent value of sorted; ties go to the smallest.
func mode(sorted []int) int {
	best, bestRun := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestRun {
			best, bestRun = sorted[i], j-i
		}
		i = j
	}
	return best
}

func histogram(lengths []int, bins int) []int {
	out := make([]int, bins)
	if len(lengths) == 0 {
		return out
	}
	lo, hi := lengths[0], lengths[0]
	for _, v := range lengths {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	width := float64(hi-lo) / float64(bins)
	for _, v := range lengths {
		idx := 0
		if width > 0 {
			idx = min(int(float64(v-lo)/width), bins-1)
		}
		out[idx]++
	}
	return out
}
