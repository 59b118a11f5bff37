package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"aiscore/internal/aidetect"
)

var formats = []string{"json", "yaml", "text"}

func checkFormat(f string) error {
	for _, ok := range formats {
		if f == ok {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want one of %s)", f, strings.Join(formats, ", "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML goes through JSON first so the keys match the JSON field names.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeResultText(w io.Writer, r aidetect.Result) {
	fmt.Fprintf(w, "  Verdict:         %s (%d%% AI, %d%% human, confidence %s)\n",
		r.Verdict, r.AIProbability, r.HumanProbability, r.Confidence)
	fmt.Fprintf(w, "  Words:           %d\n", r.WordCount)
	s := r.Scores
	fmt.Fprintf(w, "  Scores:          predictability %d, dispersion %d, entropy %d, stylometry %d, fingerprint %d\n",
		s.Predictability, s.Dispersion, s.Entropy, s.Stylometry, s.Fingerprint)
	fmt.Fprintf(w, "  Reason:          %s\n", r.Details.Reason)
	writeList(w, "Key indicators", r.Details.KeyIndicators)
	writeList(w, "Warnings", r.Details.Warnings)
	writeList(w, "Recommendations", r.Recommendations)
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "    - %s\n", it)
	}
}

func writeWindowsText(w io.Writer, rep *aidetect.WindowReport) {
	fmt.Fprintf(w, "  Windows:         %d (max %d%% AI, mean %.1f%% AI, %d flagged)\n",
		len(rep.Windows), rep.MaxAIProbability, rep.MeanAIProbability, rep.FlaggedWindows)
	for _, win := range rep.Windows {
		fmt.Fprintf(w, "    #%-3d words %6d-%-6d %3d%%  %s\n",
			win.Index, win.StartWord, win.EndWord, win.Result.AIProbability, win.Result.Verdict)
	}
}
