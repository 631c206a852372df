// Package segment splits raw text into sentences and words.
package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentencePattern matches a run of non-terminal characters closed by one or
// more terminal punctuation marks.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Sentence is a terminal-punctuated span of a document.
type Sentence struct {
	// Text is the sentence without leading whitespace, punctuation included.
	Text string
	// Start and End are the byte offsets of Text in the source document.
	Start int
	End   int
}

// Segment splits text into sentences in document order.
// Text after the last terminal punctuation mark is not a sentence and is
// dropped.
func Segment(text string) []Sentence {
	if text == "" {
		return []Sentence{}
	}

	locs := sentencePattern.FindAllStringIndex(text, -1)
	sentences := make([]Sentence, 0, len(locs))
	for _, loc := range locs {
		start := loc[0]
		for start < loc[1] {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
		sentences = append(sentences, Sentence{
			Text:  text[start:loc[1]],
			Start: start,
			End:   loc[1],
		})
	}
	return sentences
}

// Texts returns the text of each sentence.
func Texts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

// Words splits text on runs of whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}
