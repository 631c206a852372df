// Package summarize builds a short extract of a document from sentence
// positions alone. It is a local heuristic, not a semantic summarizer: the
// output is the opening sentences plus, for longer documents, the closing
// ones.
package summarize

import (
	"strings"

	"github.com/nguyentantai21042004/readaid/pkg/segment"
)

const (
	// ShortDocument is the sentence count at or below which the input is
	// returned unchanged.
	ShortDocument = 3
	// EllipsisThreshold is the sentence count above which the
	// second-to-last sentence is appended after an ellipsis marker.
	EllipsisThreshold = 4
	// TailThreshold is the sentence count above which the last sentence is
	// appended as well.
	TailThreshold = 5

	// DefaultLeadingCount is the number of opening sentences kept when the
	// budget does not set one.
	DefaultLeadingCount = 2

	// Ellipsis separates the opening sentences from the closing ones.
	Ellipsis = " [...] "
)

// Budget bounds the size of a summary. The zero value selects the defaults.
type Budget struct {
	// LeadingCount is how many opening sentences to keep. Values <= 0 mean
	// DefaultLeadingCount.
	LeadingCount int `yaml:"leading_count" json:"leading_count,omitempty"`
	// OmitTail drops the closing sentences of long documents.
	OmitTail bool `yaml:"omit_tail" json:"omit_tail,omitempty"`
}

func (b Budget) leading() int {
	if b.LeadingCount <= 0 {
		return DefaultLeadingCount
	}
	return b.LeadingCount
}

// Summarize returns the positional summary of text under budget b.
func Summarize(text string, b Budget) string {
	sentences := segment.Segment(text)
	n := len(sentences)
	if n <= ShortDocument {
		return text
	}

	lead := min(b.leading(), n)
	parts := segment.Texts(sentences[:lead])
	summary := strings.Join(parts, " ")

	if b.OmitTail || n <= EllipsisThreshold {
		return summary
	}

	// Closing sentences already inside the leading span are not repeated.
	if n-2 >= lead {
		summary += Ellipsis + sentences[n-2].Text
		if n > TailThreshold {
			summary += " " + sentences[n-1].Text
		}
	} else if n > TailThreshold && n-1 >= lead {
		summary += Ellipsis + sentences[n-1].Text
	}
	return summary
}
