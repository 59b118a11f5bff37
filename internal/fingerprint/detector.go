// Package fingerprint counts lexical markers of formulaic writing: marker
// words, stock phrases and structural patterns.
package fingerprint

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"aiscore/internal/tokenize"
)

// Category names the list a marker came from.
type Category string

const (
	WordMarker    Category = "word"
	PhraseMarker  Category = "phrase"
	PatternMarker Category = "pattern"
)

// Interpretation labels a marker-density band.
type Interpretation string

const (
	VeryFew  Interpretation = "very few — likely human"
	Few      Interpretation = "few"
	Moderate Interpretation = "moderate"
	Many     Interpretation = "many"
	VeryHigh Interpretation = "very high"
)

// contextRadius is how many bytes of surrounding text each match keeps.
const contextRadius = 40

var space = regexp.MustCompile(`\s+`)

type marker struct {
	name     string
	category Category
	re       *regexp.Regexp
}

var detectors = compileAll()

func compileAll() []marker {
	out := compileLiterals(markerWords, WordMarker)
	out = append(out, compileLiterals(markerPhrases, PhraseMarker)...)
	for _, p := range dedupe(markerPatterns, strings.TrimSpace) {
		out = append(out, marker{name: p, category: PatternMarker, re: regexp.MustCompile(`(?i)` + p)})
	}
	return out
}

func compileLiterals(list []string, category Category) []marker {
	out := make([]marker, 0, len(list))
	for _, m := range dedupe(list, normalizeLiteral) {
		out = append(out, marker{
			name:     m,
			category: category,
			re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(m) + `\b`),
		})
	}
	return out
}

func normalizeLiteral(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// dedupe drops repeated entries; listing a marker twice does not weight it.
func dedupe(list []string, normalize func(string) string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, m := range list {
		key := normalize(m)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Match is one marker occurrence.
type Match struct {
	Marker   string   `json:"marker"`
	Category Category `json:"category"`
	Position int      `json:"position"`
	Context  string   `json:"context"`
}

// Result summarizes the markers found in a passage.
type Result struct {
	WordMarkers     int            `json:"wordMarkers"`
	PhraseMarkers   int            `json:"phraseMarkers"`
	PatternMarkers  int            `json:"patternMarkers"`
	TotalMarkers    int            `json:"totalMarkers"`
	WordCount       int            `json:"wordCount"`
	Density         float64        `json:"density"`
	NormalizedScore int            `json:"normalizedScore"`
	IsHighDensity   bool           `json:"isHighDensity"`
	Interpretation  Interpretation `json:"interpretation"`
	Matches         []Match        `json:"matches"`
}

// Detect scans text with every marker list. Density is markers per 100 words.
func Detect(text string) Result {
	res := Result{Matches: []Match{}}
	for _, d := range detectors {
		for _, loc := range d.re.FindAllStringIndex(text, -1) {
			res.Matches = append(res.Matches, Match{
				Marker:   d.name,
				Category: d.category,
				Position: loc[0],
				Context:  contextWindow(text, loc[0], loc[1]),
			})
			switch d.category {
			case WordMarker:
				res.WordMarkers++
			case PhraseMarker:
				res.PhraseMarkers++
			case PatternMarker:
				res.PatternMarkers++
			}
		}
	}
	sort.SliceStable(res.Matches, func(i, j int) bool {
		return res.Matches[i].Position < res.Matches[j].Position
	})

	res.TotalMarkers = res.WordMarkers + res.PhraseMarkers + res.PatternMarkers
	res.WordCount = tokenize.WordCount(text)
	if res.WordCount > 0 {
		res.Density = float64(res.TotalMarkers) * 100 / float64(res.WordCount)
	}
	res.NormalizedScore = int(math.Min(100, math.Round(res.Density*25)))
	res.IsHighDensity = res.Density > 2
	res.Interpretation = Interpret(res.Density)
	return res
}

// Interpret maps a marker density onto its band.
func Interpret(density float64) Interpretation {
	switch {
	case density < 0.5:
		return VeryFew
	case density < 1.5:
		return Few
	case density < 3:
		return Moderate
	case density < 5:
		return Many
	default:
		return VeryHigh
	}
}

func contextWindow(text string, start, end int) string {
	from := max(0, start-contextRadius)
	to := min(len(text), end+contextRadius)
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}
	return strings.TrimSpace(space.ReplaceAllString(text[from:to], " "))
}
