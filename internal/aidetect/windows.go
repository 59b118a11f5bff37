package aidetect

import (
	"fmt"
	"math"
	"time"

	"aiscore/internal/chunk"
	"aiscore/internal/pipeline"
)

// WindowConfig sizes the windows of AnalyzeWindows. Workers <= 0 means one
// goroutine per CPU.
type WindowConfig struct {
	Words   int `json:"words" mapstructure:"words" yaml:"words"`
	Overlap int `json:"overlap" mapstructure:"overlap" yaml:"overlap"`
	Workers int `json:"workers" mapstructure:"workers" yaml:"workers"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{Words: 400, Overlap: 50}
}

type Window struct {
	Index     int    `json:"index"`
	StartWord int    `json:"startWord"`
	EndWord   int    `json:"endWord"`
	Result    Result `json:"result"`
}

// WindowReport is the per-window breakdown of a long document.
type WindowReport struct {
	Windows           []Window `json:"windows"`
	MaxAIProbability  int      `json:"maxAIProbability"`
	MeanAIProbability float64  `json:"meanAIProbability"`
	FlaggedWindows    int      `json:"flaggedWindows"`
}

// AnalyzeWindows scores every window of text independently. Windows are
// analyzed concurrently and reported in document order.
func (e *Engine) AnalyzeWindows(text string, cfg WindowConfig) WindowReport {
	if cfg.Words <= 0 {
		cfg = DefaultWindowConfig()
	}
	start := time.Now()
	segments := chunk.SlidingWindow(text, cfg.Words, cfg.Overlap)
	report := WindowReport{Windows: make([]Window, len(segments))}

	// Each job writes only its own slot.
	pipeline.Process(segments, cfg.Workers, func(seg chunk.Segment) error {
		report.Windows[seg.Index] = Window{
			Index:     seg.Index,
			StartWord: seg.StartWord,
			EndWord:   seg.EndWord,
			Result:    e.Analyze(seg.Text),
		}
		return nil
	})

	sum := 0
	for _, w := range report.Windows {
		p := w.Result.AIProbability
		sum += p
		report.MaxAIProbability = max(report.MaxAIProbability, p)
		if w.Result.Verdict == LikelyAI || w.Result.Verdict == DefinitelyAI {
			report.FlaggedWindows++
		}
	}
	if n := len(report.Windows); n > 0 {
		report.MeanAIProbability = math.Round(float64(sum)/float64(n)*100) / 100
	}

	e.log("ANALYSIS", "AI", "Windowed analysis completed", fmt.Sprintf("windows=%d flagged=%d max_p_ai=%d duration_ms=%d",
		len(report.Windows), report.FlaggedWindows, report.MaxAIProbability, time.Since(start).Milliseconds()))
	return report
}
