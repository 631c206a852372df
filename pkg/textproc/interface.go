package textproc

import (
	"github.com/nguyentantai21042004/readaid/pkg/segment"
	"github.com/nguyentantai21042004/readaid/pkg/summarize"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
)

// Engine exposes the text operations as independent, composable calls.
// None of them fails; callers validate input with ValidateInput first.
type Engine interface {
	Segment(text string) []segment.Sentence
	Correct(text string) string
	Summarize(text string, budget summarize.Budget) string
	Transliterate(text string, dir translit.Direction) string
	// Run threads text through ops in order using the engine's configured
	// budget and direction.
	Run(text string, ops ...Operation) string
}
