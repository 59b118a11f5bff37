package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordsLowercasesAndKeepsContractions(t *testing.T) {
	got := Words("Don't PANIC, it's only 42 words... really!")
	assert.Equal(t, []string{"don't", "panic", "it's", "only", "42", "words", "really"}, got)
}

func TestWordCountMatchesWords(t *testing.T) {
	text := "The cat sat on the mat. It was happy."
	assert.Equal(t, len(Words(text)), WordCount(text))
	assert.Equal(t, 0, WordCount("   \n\t "))
}

func TestSentencesSplitsOnPunctuationRuns(t *testing.T) {
	got := Sentences("First one. Second?! Third...   ")
	require.Len(t, got, 3)
	assert.Equal(t, "Second", got[1])
	assert.Empty(t, Sentences("...!?"))
}

func TestParagraphsSplitOnBlankLines(t *testing.T) {
	text := "Para one line one.\nline two.\n\n  \nPara two.\r\n\r\nPara three."
	got := Paragraphs(text)
	require.Len(t, got, 3)
	assert.Equal(t, "Para two.", got[1])
}
