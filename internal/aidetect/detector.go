package aidetect

import (
	"fmt"
	"math"
	"time"

	"aiscore/internal/burstiness"
	"aiscore/internal/entropy"
	"aiscore/internal/fingerprint"
	"aiscore/internal/perplexity"
	"aiscore/internal/stylometry"
	"aiscore/internal/tokenize"
)

// MinWords is the shortest input the extractors are run on.
const MinWords = 10

// Logger receives one line per pipeline stage. Levels used: DEBUG, ANALYSIS.
type Logger interface {
	Log(level, stage, message, detail string)
}

// Weights scale the five sub-scores into the aggregate probability.
type Weights struct {
	Predictability float64 `json:"predictability" mapstructure:"predictability" yaml:"predictability"`
	Dispersion     float64 `json:"dispersion" mapstructure:"dispersion" yaml:"dispersion"`
	Entropy        float64 `json:"entropy" mapstructure:"entropy" yaml:"entropy"`
	Stylometry     float64 `json:"stylometry" mapstructure:"stylometry" yaml:"stylometry"`
	Fingerprint    float64 `json:"fingerprint" mapstructure:"fingerprint" yaml:"fingerprint"`
}

func DefaultWeights() Weights {
	return Weights{
		Predictability: 0.30,
		Dispersion:     0.25,
		Entropy:        0.15,
		Stylometry:     0.15,
		Fingerprint:    0.15,
	}
}

// Validate rejects negative weights and an all-zero set.
func (w Weights) Validate() error {
	vals := []struct {
		name string
		v    float64
	}{
		{"predictability", w.Predictability},
		{"dispersion", w.Dispersion},
		{"entropy", w.Entropy},
		{"stylometry", w.Stylometry},
		{"fingerprint", w.Fingerprint},
	}
	sum := 0.0
	for _, f := range vals {
		if f.v < 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("weight %s must be a non-negative number, got %v", f.name, f.v)
		}
		sum += f.v
	}
	if sum == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

// Engine scores passages. The trained model is read-only after NewEngine, so
// one Engine may serve any number of concurrent Analyze calls.
type Engine struct {
	model   *perplexity.Model
	weights Weights
	logger  Logger
}

type Option func(*Engine)

func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithModel shares an already trained model instead of training a new one.
func WithModel(m *perplexity.Model) Option {
	return func(e *Engine) { e.model = m }
}

// NewEngine trains the reference language model unless WithModel supplies one.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	if e.model == nil {
		start := time.Now()
		e.model = perplexity.NewDefault()
		e.log("ANALYSIS", "MODEL", "Reference model trained", fmt.Sprintf("corpus=%s vocab=%d tokens=%d duration_ms=%d",
			perplexity.CorpusVersion, e.model.VocabularySize(), e.model.TokenCount(), time.Since(start).Milliseconds()))
	}
	return e
}

func (e *Engine) Weights() Weights { return e.weights }

func (e *Engine) Model() *perplexity.Model { return e.model }

// Analyze scores text. It never fails: inputs under MinWords words get the
// fixed neutral result, and every extractor guards its own empty cases.
func (e *Engine) Analyze(text string) Result {
	startAll := time.Now()
	words := tokenize.WordCount(text)
	if words < MinWords {
		e.log("ANALYSIS", "AI", "Text too short for analysis", fmt.Sprintf("words=%d min=%d", words, MinWords))
		return insufficientResult(words)
	}
	e.log("ANALYSIS", "AI", "AI detection run started", fmt.Sprintf("words=%d", words))

	var metrics Metrics
	e.withSpan("perplexity", func() { metrics.Perplexity = e.model.Calculate(text) })
	e.withSpan("burstiness", func() { metrics.Burstiness = burstiness.Analyze(text) })
	e.withSpan("entropy", func() { metrics.Entropy = entropy.Analyze(text) })
	e.withSpan("stylometry", func() { metrics.Stylometry = stylometry.Extract(text) })
	e.withSpan("fingerprint", func() { metrics.Fingerprint = fingerprint.Detect(text) })

	scores := Scores{
		Predictability: perplexity.Score(metrics.Perplexity.Perplexity),
		Dispersion:     burstiness.Score(metrics.Burstiness.BurstinessIndex),
		Entropy:        entropy.Score(metrics.Entropy.NormalizedEntropy),
		Stylometry:     stylometry.Score(metrics.Stylometry),
		Fingerprint:    metrics.Fingerprint.NormalizedScore,
	}
	ai := aggregate(scores, e.weights)

	res := Result{
		AIProbability:    ai,
		HumanProbability: 100 - ai,
		Confidence:       confidenceFor(metrics.Perplexity.Perplexity, metrics.Burstiness.BurstinessIndex),
		Verdict:          Classify(ai),
		WordCount:        words,
		Scores:           scores,
		Metrics:          &metrics,
		Recommendations:  recommendations(scores),
		Details:          explain(scores, &metrics),
	}

	e.log("ANALYSIS", "AI", "AI detection run completed", fmt.Sprintf("words=%d p_ai=%d verdict=%q confidence=%s duration_ms=%d",
		words, res.AIProbability, res.Verdict, res.Confidence, time.Since(startAll).Milliseconds()))
	return res
}

// aggregate is the weighted sum of the sub-scores, rounded into [0,100].
func aggregate(s Scores, w Weights) int {
	sum := float64(s.Predictability)*w.Predictability +
		float64(s.Dispersion)*w.Dispersion +
		float64(s.Entropy)*w.Entropy +
		float64(s.Stylometry)*w.Stylometry +
		float64(s.Fingerprint)*w.Fingerprint
	return clamp100(int(math.Round(sum)))
}

// confidenceFor averages how far perplexity and burstiness sit from their
// neutral points (50 and 0.5).
func confidenceFor(ppl, burstinessIndex float64) Confidence {
	pplSignal := math.Abs(ppl-50) / 50
	burstSignal := math.Abs(burstinessIndex-0.5) / 0.5
	mean := (pplSignal + burstSignal) / 2
	switch {
	case mean > 0.5:
		return ConfidenceHigh
	case mean > 0.25:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func insufficientResult(words int) Result {
	return Result{
		AIProbability:    50,
		HumanProbability: 50,
		Confidence:       ConfidenceLow,
		Verdict:          Uncertain,
		WordCount:        words,
		Scores:           Scores{Predictability: 50, Dispersion: 50, Entropy: 50, Stylometry: 50, Fingerprint: 50},
		Recommendations:  []string{fmt.Sprintf("Provide at least %d words for a reliable analysis.", MinWords)},
		Details: Details{
			Reason:        "Insufficient text: too few words to measure.",
			KeyIndicators: []string{},
			Warnings:      []string{"Text too short for analysis"},
		},
		Insufficient: true,
	}
}

func (e *Engine) withSpan(name string, fn func()) {
	start := time.Now()
	fn()
	e.log("DEBUG", "AI", "stage completed", fmt.Sprintf("step=%s duration_us=%d", name, time.Since(start).Microseconds()))
}

func (e *Engine) log(level, stage, message, detail string) {
	if e.logger != nil {
		e.logger.Log(level, stage, message, detail)
	}
}

func clamp100(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
