// Package translit performs word-by-word transliteration through a static
// dictionary.
//
// Tokens are the whitespace-separated words of the input. Each token is looked
// up lowercased; a hit is replaced with the stored value, a miss is kept as
// written. The output joins tokens with single spaces, so runs of whitespace
// and newlines in the input collapse.
package translit

import "strings"

var hinglish = Hinglish()

// Transliterate maps every token of text through table in direction dir.
// A nil table selects the built-in Hinglish table. An unknown direction maps
// nothing.
func Transliterate(text string, dir Direction, table *Table) string {
	if table == nil {
		table = hinglish
	}

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if v, ok := table.Lookup(dir, tok); ok {
			tokens[i] = v
		}
	}
	return strings.Join(tokens, " ")
}
