package textproc

import (
	"strings"

	"github.com/nguyentantai21042004/readaid/pkg/segment"
	"github.com/nguyentantai21042004/readaid/pkg/summarize"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
)

func (e *implEngine) Segment(text string) []segment.Sentence {
	return segment.Segment(text)
}

func (e *implEngine) Correct(text string) string {
	return e.corrector.Correct(text)
}

func (e *implEngine) Summarize(text string, budget summarize.Budget) string {
	return summarize.Summarize(text, budget)
}

func (e *implEngine) Transliterate(text string, dir translit.Direction) string {
	return translit.Transliterate(text, dir, e.table)
}

func (e *implEngine) Run(text string, ops ...Operation) string {
	for _, op := range ops {
		text = e.apply(op, text)
	}
	return text
}

func (e *implEngine) apply(op Operation, text string) string {
	switch op {
	case OpSegment:
		return strings.Join(segment.Texts(e.Segment(text)), "\n")
	case OpCorrect:
		return e.Correct(text)
	case OpSummarize:
		return e.Summarize(text, e.budget)
	case OpTransliterate:
		return e.Transliterate(text, e.direction)
	}
	return text
}
