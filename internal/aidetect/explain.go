package aidetect

import "fmt"

const (
	recPredictability = "Vary word choice and phrasing: the text is highly predictable to a language model."
	recDispersion     = "Mix short and long sentences: sentence lengths are unusually uniform."
	recFingerprint    = "Replace formulaic transitions and stock phrases such as \"furthermore\" or \"it is important to note\"."
	recStylometry     = "Broaden the vocabulary and vary sentence structure."
	recEntropy        = "Word choice is unusually scattered: check that the passage still reads coherently."
	recNatural        = "The text shows natural writing patterns; no changes recommended."
)

// recommendations checks each sub-score against its own threshold.
func recommendations(s Scores) []string {
	out := make([]string, 0, 5)
	if s.Predictability > 60 {
		out = append(out, recPredictability)
	}
	if s.Dispersion > 60 {
		out = append(out, recDispersion)
	}
	if s.Fingerprint > 40 {
		out = append(out, recFingerprint)
	}
	if s.Stylometry > 60 {
		out = append(out, recStylometry)
	}
	if s.Entropy < 30 {
		out = append(out, recEntropy)
	}
	if len(out) == 0 {
		out = append(out, recNatural)
	}
	return out
}

func explain(s Scores, m *Metrics) Details {
	d := Details{KeyIndicators: []string{}, Warnings: []string{}}

	if s.Predictability >= 70 {
		d.KeyIndicators = append(d.KeyIndicators, fmt.Sprintf("Highly predictable word sequences (perplexity %.1f)", m.Perplexity.Perplexity))
	}
	if s.Dispersion >= 70 {
		d.KeyIndicators = append(d.KeyIndicators, fmt.Sprintf("Uniform sentence lengths (burstiness index %.2f)", m.Burstiness.BurstinessIndex))
	}
	if s.Fingerprint >= 50 {
		d.KeyIndicators = append(d.KeyIndicators, fmt.Sprintf("Frequent formulaic markers (%d found)", m.Fingerprint.TotalMarkers))
	}
	if s.Stylometry >= 70 {
		d.KeyIndicators = append(d.KeyIndicators, "Formulaic vocabulary and sentence structure")
	}
	if s.Entropy >= 70 {
		d.KeyIndicators = append(d.KeyIndicators, fmt.Sprintf("Low information density (normalized entropy %.2f)", m.Entropy.NormalizedEntropy))
	}

	if m.Stylometry.TypeTokenRatio < 0.4 {
		d.Warnings = append(d.Warnings, fmt.Sprintf("Low vocabulary diversity (type-token ratio %.2f)", m.Stylometry.TypeTokenRatio))
	}
	switch {
	case m.Fingerprint.Density > 5:
		d.Warnings = append(d.Warnings, fmt.Sprintf("Very high marker density (%.1f per 100 words)", m.Fingerprint.Density))
	case m.Fingerprint.IsHighDensity:
		d.Warnings = append(d.Warnings, fmt.Sprintf("High marker density (%.1f per 100 words)", m.Fingerprint.Density))
	}
	if m.Burstiness.SentenceCount < 3 {
		d.Warnings = append(d.Warnings, "Fewer than three sentences: sentence-length variation is unreliable")
	}

	d.Reason = dominantReason(s, m)
	return d
}

// dominantReason describes whichever of predictability, dispersion and
// fingerprint scored highest; ties go to the earlier one.
func dominantReason(s Scores, m *Metrics) string {
	top := s.Predictability
	reason := fmt.Sprintf("Word predictability is the strongest signal: %s (perplexity %.1f).",
		m.Perplexity.Interpretation, m.Perplexity.Perplexity)
	if s.Dispersion > top {
		top = s.Dispersion
		reason = fmt.Sprintf("Sentence-length variation is the strongest signal: %s (burstiness index %.2f).",
			m.Burstiness.Interpretation, m.Burstiness.BurstinessIndex)
	}
	if s.Fingerprint > top {
		reason = fmt.Sprintf("Formulaic markers are the strongest signal: %s (%.1f per 100 words).",
			m.Fingerprint.Interpretation, m.Fingerprint.Density)
	}
	return reason
}
