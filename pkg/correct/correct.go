// Package correct implements rule-based spelling and capitalization fixes.
//
// An [Engine] applies an ordered list of [Rule] values, each one consuming the
// output of the previous. The built-in order is misspellings, pronoun, then
// sentence case, so replacement text from the misspelling table can still be
// capitalized by the later rules. Engines are read-only after construction and
// safe for concurrent use.
package correct

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMisspellings is the built-in misspelling table.
var DefaultMisspellings = map[string]string{
	"teh":        "the",
	"recieve":    "receive",
	"freind":     "friend",
	"beleive":    "believe",
	"thier":      "their",
	"alot":       "a lot",
	"definately": "definitely",
	"seperate":   "separate",
	"occured":    "occurred",
	"untill":     "until",
}

// Option configures an [Engine].
type Option func(*options)

type options struct {
	misspellings map[string]string
	extra        []Rule
}

// WithMisspellings adds entries to the misspelling table. Entries with the
// same key as a built-in one replace it.
func WithMisspellings(table map[string]string) Option {
	return func(o *options) {
		for k, v := range table {
			o.misspellings[strings.ToLower(k)] = v
		}
	}
}

// WithRules appends rules that run after the built-in ones.
func WithRules(rules ...Rule) Option {
	return func(o *options) {
		o.extra = append(o.extra, rules...)
	}
}

// Engine applies correction rules in a fixed order.
type Engine struct {
	rules []Rule
}

// New builds an Engine with the built-in rules plus any options.
func New(opts ...Option) *Engine {
	o := &options{misspellings: make(map[string]string, len(DefaultMisspellings))}
	for k, v := range DefaultMisspellings {
		o.misspellings[k] = v
	}
	for _, opt := range opts {
		opt(o)
	}

	rules := []Rule{
		MisspellingRule(o.misspellings),
		PronounRule(),
		SentenceCaseRule(),
	}
	rules = append(rules, o.extra...)
	return &Engine{rules: rules}
}

// Correct runs every rule over text in order.
func (e *Engine) Correct(text string) string {
	for _, r := range e.rules {
		text = r.Apply(text)
	}
	return text
}

// Rules returns the rule names in application order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}

var defaultEngine = New()

// Correct applies the built-in rules to text.
func Correct(text string) string {
	return defaultEngine.Correct(text)
}

// alternation builds a regexp alternation of the keys, longest first so a
// shorter key never shadows a longer one.
func alternation(table map[string]string) string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		keys[i] = regexp.QuoteMeta(k)
	}
	return strings.Join(keys, "|")
}
