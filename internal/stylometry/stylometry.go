// Package stylometry extracts vocabulary-richness and syntactic-complexity
// ratios and turns them into a rule-based AI-likelihood score.
package stylometry

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"aiscore/internal/tokenize"
)

var vowelGroup = regexp.MustCompile(`[aeiouy]+`)

// Features are the sixteen stylometric measurements of one passage.
type Features struct {
	TypeTokenRatio         float64 `json:"typeTokenRatio"`
	HapaxRatio             float64 `json:"hapaxRatio"`
	YulesK                 float64 `json:"yulesK"`
	SimpsonsIndex          float64 `json:"simpsonsIndex"`
	AvgSentenceLength      float64 `json:"avgSentenceLength"`
	AvgClauseCount         float64 `json:"avgClauseCount"`
	SubordinateClauseRatio float64 `json:"subordinateClauseRatio"`
	AvgWordLength          float64 `json:"avgWordLength"`
	PolysyllableRatio      float64 `json:"polysyllableRatio"`
	PunctuationVariety     int     `json:"punctuationVariety"`
	CommaSentenceRatio     float64 `json:"commaSentenceRatio"`
	FunctionWordRatio      float64 `json:"functionWordRatio"`
	StopWordFrequency      float64 `json:"stopWordFrequency"`
	VerbRatio              float64 `json:"verbRatio"`
	NounRatio              float64 `json:"nounRatio"`
	AdjectiveRatio         float64 `json:"adjectiveRatio"`
}

// Extract computes Features for text. Empty inputs yield zero values.
func Extract(text string) Features {
	words := tokenize.Words(text)
	sentences := tokenize.Sentences(text)
	var f Features

	freq := map[string]int{}
	for _, w := range words {
		freq[w]++
	}
	n := len(words)
	if n > 0 {
		hapax := 0
		sumSq := 0
		sumPairs := 0
		for _, c := range freq {
			if c == 1 {
				hapax++
			}
			sumSq += c * c
			sumPairs += c * (c - 1)
		}
		nf := float64(n)
		f.TypeTokenRatio = float64(len(freq)) / nf
		f.HapaxRatio = float64(hapax) / nf
		f.YulesK = 10000 * (nf*nf - float64(sumSq)) / (nf * nf)
		if n > 1 {
			f.SimpsonsIndex = 1 - float64(sumPairs)/(nf*(nf-1))
		}
	}

	if len(sentences) > 0 {
		totalWords := 0
		totalClauses := 0
		commas := 0
		for _, s := range sentences {
			totalWords += tokenize.WordCount(s)
			c := strings.Count(s, ",")
			commas += c
			totalClauses += c + strings.Count(s, ";") + 1
		}
		ns := float64(len(sentences))
		f.AvgSentenceLength = float64(totalWords) / ns
		f.AvgClauseCount = float64(totalClauses) / ns
		f.CommaSentenceRatio = float64(commas) / ns
		subordinate := 0
		for _, w := range words {
			if _, ok := subordinators[w]; ok {
				subordinate++
			}
		}
		f.SubordinateClauseRatio = float64(subordinate) / float64(totalClauses)
	}

	f.PunctuationVariety = punctuationVariety(text)

	if n == 0 {
		return f
	}
	letters := 0
	poly := 0
	function := 0
	stop := 0
	verbs := 0
	nouns := 0
	adjectives := 0
	for _, w := range words {
		letters += len([]rune(w))
		if Syllables(w) >= 3 {
			poly++
		}
		if _, ok := functionWords[w]; ok {
			function++
		}
		if _, ok := stopWords[w]; ok {
			stop++
		}
		switch classify(w) {
		case verb:
			verbs++
		case noun:
			nouns++
		case adjective:
			adjectives++
		}
	}
	nf := float64(n)
	f.AvgWordLength = float64(letters) / nf
	f.PolysyllableRatio = float64(poly) / nf
	f.FunctionWordRatio = float64(function) / nf
	f.StopWordFrequency = float64(stop) / nf
	f.VerbRatio = float64(verbs) / nf
	f.NounRatio = float64(nouns) / nf
	f.AdjectiveRatio = float64(adjectives) / nf
	return f
}

// Score applies the fixed stylometric rules to f, starting from a neutral 50.
// Average sentence lengths of 15-25 words are the suspiciously narrow band.
func Score(f Features) int {
	score := 50.0
	switch {
	case f.TypeTokenRatio < 0.3:
		score += 20
	case f.TypeTokenRatio < 0.5:
		score += 10
	case f.TypeTokenRatio > 0.7:
		score -= 15
	}
	score += clamp((f.FunctionWordRatio-0.35)*125, 0, 25)
	score += clamp((0.15-f.PolysyllableRatio)*250, 0, 25)
	if f.AvgSentenceLength >= 15 && f.AvgSentenceLength <= 25 {
		score += 10
	}
	return int(math.Round(clamp(score, 0, 100)))
}

// Syllables estimates syllables by counting vowel groups, dropping a silent
// trailing "e". Every word has at least one.
func Syllables(word string) int {
	word = strings.ToLower(word)
	count := len(vowelGroup.FindAllStringIndex(word, -1))
	if count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && !strings.HasSuffix(word, "ee") {
		count--
	}
	return max(count, 1)
}

type wordClass int

const (
	other wordClass = iota
	verb
	noun
	adjective
)

func classify(w string) wordClass {
	if _, ok := commonVerbs[w]; ok {
		return verb
	}
	if _, ok := functionWords[w]; ok {
		return other
	}
	if len(w) < 4 {
		return other
	}
	for _, s := range verbSuffixes {
		if strings.HasSuffix(w, s) {
			return verb
		}
	}
	for _, s := range nounSuffixes {
		if strings.HasSuffix(w, s) {
			return noun
		}
	}
	for _, s := range adjectiveSuffixes {
		if strings.HasSuffix(w, s) {
			return adjective
		}
	}
	return other
}

func punctuationVariety(text string) int {
	seen := map[rune]struct{}{}
	for _, r := range text {
		if unicode.IsPunct(r) {
			seen[r] = struct{}{}
		}
	}
	return len(seen)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
