package aidetect

import (
	"aiscore/internal/burstiness"
	"aiscore/internal/entropy"
	"aiscore/internal/fingerprint"
	"aiscore/internal/perplexity"
	"aiscore/internal/stylometry"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Verdict string

const (
	DefinitelyAI    Verdict = "Definitely AI"
	LikelyAI        Verdict = "Likely AI"
	PossiblyAI      Verdict = "Possibly AI"
	Uncertain       Verdict = "Uncertain"
	PossiblyHuman   Verdict = "Possibly Human"
	LikelyHuman     Verdict = "Likely Human"
	DefinitelyHuman Verdict = "Definitely Human"
)

// verdictFloors lists each verdict with the lowest probability it covers, in
// descending order. The last floor is 0 so every probability has a verdict.
var verdictFloors = []struct {
	floor   int
	verdict Verdict
}{
	{85, DefinitelyAI},
	{70, LikelyAI},
	{55, PossiblyAI},
	{45, Uncertain},
	{30, PossiblyHuman},
	{15, LikelyHuman},
	{0, DefinitelyHuman},
}

// Classify maps an aggregate AI probability onto its verdict. Values outside
// [0,100] are clamped first.
func Classify(probability int) Verdict {
	probability = clamp100(probability)
	for _, vf := range verdictFloors {
		if probability >= vf.floor {
			return vf.verdict
		}
	}
	return DefinitelyHuman
}

// Scores are the five normalized sub-scores, each in [0,100].
type Scores struct {
	Predictability int `json:"predictability"`
	Dispersion     int `json:"dispersion"`
	Entropy        int `json:"entropy"`
	Stylometry     int `json:"stylometry"`
	Fingerprint    int `json:"fingerprint"`
}

// Metrics keeps the raw extractor outputs behind the sub-scores.
type Metrics struct {
	Perplexity  perplexity.Result   `json:"perplexity"`
	Burstiness  burstiness.Metrics  `json:"burstiness"`
	Entropy     entropy.Metrics     `json:"entropy"`
	Stylometry  stylometry.Features `json:"stylometry"`
	Fingerprint fingerprint.Result  `json:"fingerprint"`
}

type Details struct {
	Reason        string   `json:"reason"`
	KeyIndicators []string `json:"keyIndicators"`
	Warnings      []string `json:"warnings"`
}

// Result is the verdict for one passage. Metrics is nil when the passage was
// too short to measure.
type Result struct {
	AIProbability    int        `json:"aiProbability"`
	HumanProbability int        `json:"humanProbability"`
	Confidence       Confidence `json:"confidence"`
	Verdict          Verdict    `json:"verdict"`
	WordCount        int        `json:"wordCount"`
	Insufficient     bool       `json:"insufficient"`
	Scores           Scores     `json:"scores"`
	Metrics          *Metrics   `json:"metrics,omitempty"`
	Recommendations  []string   `json:"recommendations"`
	Details          Details    `json:"details"`
}
