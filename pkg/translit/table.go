package translit

import (
	"errors"
	"fmt"
	"strings"
)

// Direction selects which side of a [Table] is used for lookups.
type Direction string

const (
	// Forward maps source-language tokens to the target language.
	Forward Direction = "forward"
	// Reverse maps target-language tokens back to the source language.
	Reverse Direction = "reverse"
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised values.
var ErrUnknownDirection = errors.New("translit: unknown direction")

// ParseDirection converts a user-supplied string into a Direction.
// The empty string selects Forward.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case "", Forward:
		return Forward, nil
	case Reverse:
		return Reverse, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Table is a word-level dictionary with one map per direction. Keys are
// stored lowercase; values keep the casing they were given. A Table is
// read-only after construction.
type Table struct {
	forward map[string]string
	reverse map[string]string
}

// NewTable builds a Table from the two direction maps.
func NewTable(forward, reverse map[string]string) *Table {
	return &Table{
		forward: lowerKeys(forward, nil),
		reverse: lowerKeys(reverse, nil),
	}
}

// With returns a copy of t with the extra entries added. Extra entries
// replace existing ones with the same key.
func (t *Table) With(forward, reverse map[string]string) *Table {
	return &Table{
		forward: lowerKeys(forward, t.forward),
		reverse: lowerKeys(reverse, t.reverse),
	}
}

// Lookup returns the mapping of token in direction dir, ignoring case.
func (t *Table) Lookup(dir Direction, token string) (string, bool) {
	var m map[string]string
	switch dir {
	case Forward:
		m = t.forward
	case Reverse:
		m = t.reverse
	default:
		return "", false
	}
	v, ok := m[strings.ToLower(token)]
	return v, ok
}

// Len returns the number of entries in direction dir.
func (t *Table) Len(dir Direction) int {
	switch dir {
	case Forward:
		return len(t.forward)
	case Reverse:
		return len(t.reverse)
	}
	return 0
}

func lowerKeys(src, base map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(src))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range src {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Hinglish returns the built-in Hinglish/English table.
func Hinglish() *Table {
	return NewTable(
		map[string]string{
			"kya":        "what",
			"hai":        "is",
			"aap":        "you",
			"kaise":      "how",
			"ho":         "are",
			"main":       "I",
			"hoon":       "am",
			"theek":      "fine",
			"dhanyavaad": "thank you",
		},
		map[string]string{
			"what":  "kya",
			"is":    "hai",
			"you":   "aap",
			"how":   "kaise",
			"are":   "ho",
			"i":     "main",
			"am":    "hoon",
			"fine":  "theek",
			"thank": "dhanyavaad",
		},
	)
}
