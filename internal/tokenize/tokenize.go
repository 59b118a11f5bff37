// Package tokenize splits raw text into the word, sentence and paragraph units
// shared by every signal extractor.
package tokenize

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+(?:'[\p{L}\p{N}]+)*`)
var sentenceEnd = regexp.MustCompile(`[.!?]+`)
var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n`)

// Words returns the lowercase word tokens of text. Apostrophes inside a word
// are kept ("don't"), punctuation and symbols are dropped.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// WordCount is len(Words(text)) without the lowercase copy.
func WordCount(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// Sentences splits text on runs of sentence-ending punctuation and drops
// fragments that are empty after trimming.
func Sentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Paragraphs splits text on blank lines.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := paragraphBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
