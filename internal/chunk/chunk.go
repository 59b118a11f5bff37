// Package chunk splits long documents into overlapping word windows.
package chunk

import (
	"strings"
	"unicode"
)

type Segment struct {
	Index     int    `json:"index"`
	StartWord int    `json:"startWord"`
	EndWord   int    `json:"endWord"`
	Text      string `json:"-"`
}

// SlidingWindow cuts text into windows of about segmentWords whitespace
// tokens, each overlapping the previous by overlapWords. A window end is
// pushed forward to the next sentence end when one is within a quarter
// window, so sentence-level statistics are not cut mid-sentence.
// Every token is covered by at least one segment. Segment text is the
// original span of the document, so line breaks and paragraphs survive.
func SlidingWindow(text string, segmentWords, overlapWords int) []Segment {
	if segmentWords <= 0 {
		return nil
	}
	if overlapWords < 0 {
		overlapWords = 0
	}
	if overlapWords >= segmentWords {
		overlapWords = segmentWords - 1
	}

	spans := fieldSpans(text)
	if len(spans) == 0 {
		return nil
	}
	tokens := make([]string, len(spans))
	for i, sp := range spans {
		tokens[i] = text[sp[0]:sp[1]]
	}

	step := segmentWords - overlapWords
	slack := segmentWords / 4
	segments := make([]Segment, 0, (len(tokens)/step)+1)
	for start := 0; start < len(tokens); start += step {
		end := min(start+segmentWords, len(tokens))
		end = snapToSentenceEnd(tokens, end, slack)
		segments = append(segments, Segment{
			Index:     len(segments),
			StartWord: start,
			EndWord:   end,
			Text:      text[spans[start][0]:spans[end-1][1]],
		})
		if end == len(tokens) {
			break
		}
	}

	return segments
}

func snapToSentenceEnd(tokens []string, end, slack int) int {
	for i := end; i < len(tokens) && i < end+slack; i++ {
		if endsSentence(tokens[i-1]) {
			return i
		}
	}
	return end
}

func endsSentence(token string) bool {
	token = strings.TrimRight(token, `"')]`)
	return strings.HasSuffix(token, ".") || strings.HasSuffix(token, "!") || strings.HasSuffix(token, "?")
}

// fieldSpans returns the byte offsets of the tokens strings.Fields would
// produce.
func fieldSpans(text string) [][2]int {
	var spans [][2]int
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, [2]int{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(text)})
	}
	return spans
}
