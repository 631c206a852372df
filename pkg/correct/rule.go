package correct

import (
	"regexp"
	"strings"
)

// Rule is a single lexical substitution. Replace receives the full match
// followed by its capture groups, as returned by FindStringSubmatch.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace func(groups []string) string
	// Accept, when set, is asked about each match with the text that
	// follows it. Rejected matches are left as they are.
	Accept func(rest string) bool
}

// Apply replaces every non-overlapping match of the rule's pattern in text.
// Text is returned unchanged when nothing matches.
func (r Rule) Apply(text string) string {
	if r.Pattern == nil || r.Replace == nil {
		return text
	}

	matches := r.Pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, loc := range matches {
		if r.Accept != nil && !r.Accept(text[loc[1]:]) {
			continue
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(text[prev:loc[0]])
		b.WriteString(r.Replace(groups))
		prev = loc[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

var (
	pronounPattern      = regexp.MustCompile(`\bi `)
	sentenceCasePattern = regexp.MustCompile(`([.!?]) ([a-z])`)
)

// MisspellingRule replaces whole words found in table, ignoring case. The
// replacement is inserted exactly as stored.
func MisspellingRule(table map[string]string) Rule {
	lookup := make(map[string]string, len(table))
	for k, v := range table {
		lookup[strings.ToLower(k)] = v
	}

	if len(lookup) == 0 {
		return Rule{Name: "misspellings"}
	}

	return Rule{
		Name:    "misspellings",
		Pattern: regexp.MustCompile(`(?i)\b(` + alternation(lookup) + `)\b`),
		Replace: func(g []string) string {
			return lookup[strings.ToLower(g[1])]
		},
	}
}

// PronounRule capitalizes a standalone "i" followed by a space and a
// lowercase letter. An "i" before punctuation or at the end of the text is
// left alone.
func PronounRule() Rule {
	return Rule{
		Name:    "pronoun",
		Pattern: pronounPattern,
		Replace: func([]string) string {
			return "I "
		},
		// The next letter is only inspected, never consumed, so "i i am"
		// is fixed in one pass.
		Accept: func(rest string) bool {
			return rest != "" && rest[0] >= 'a' && rest[0] <= 'z'
		},
	}
}

// SentenceCaseRule upper-cases the letter right after ". ", "! " or "? ".
func SentenceCaseRule() Rule {
	return Rule{
		Name:    "sentence-case",
		Pattern: sentenceCasePattern,
		Replace: func(g []string) string {
			return g[1] + " " + strings.ToUpper(g[2])
		},
	}
}
