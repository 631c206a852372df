// Package assistant answers chat messages from an ordered list of canned
// responses. Rules are evaluated top to bottom and the first match wins; when
// nothing matches the fallback response is returned.
package assistant

import (
	"strings"

	"github.com/antzucaro/matchr"
)

const (
	// fuzzyMinLength is the shortest keyword that may match by similarity
	// instead of by substring.
	fuzzyMinLength = 5
	// fuzzyThreshold is the Jaro-Winkler score a token needs to stand in
	// for a keyword.
	fuzzyThreshold = 0.9
)

// Predicate reports whether a rule applies to a message. The message is
// passed lowercased.
type Predicate func(message string) bool

// Rule pairs a predicate with its canned response.
type Rule struct {
	Name     string
	Match    Predicate
	Response string
}

// Reply is the assistant's answer. Rule is empty when the fallback was used.
type Reply struct {
	Rule string `json:"rule,omitempty"`
	Text string `json:"text"`
}

// Keywords matches a message containing any of the keywords as a substring.
// Single-word keywords of five or more letters also match a message token
// that is close enough by Jaro-Winkler similarity, which absorbs common
// typos such as "grammer".
func Keywords(keywords ...string) Predicate {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	return func(message string) bool {
		for _, k := range lowered {
			if strings.Contains(message, k) {
				return true
			}
		}
		for _, tok := range strings.FieldsFunc(message, isSeparator) {
			for _, k := range lowered {
				if len(k) < fuzzyMinLength || strings.Contains(k, " ") {
					continue
				}
				if matchr.JaroWinkler(tok, k, false) >= fuzzyThreshold {
					return true
				}
			}
		}
		return false
	}
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '.', '!', '?', ';', ':', '"', '(', ')':
		return true
	}
	return false
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithRules replaces the default rule list.
func WithRules(rules ...Rule) Option {
	return func(a *Assistant) {
		a.rules = rules
	}
}

// WithFallback replaces the response used when no rule matches.
func WithFallback(text string) Option {
	return func(a *Assistant) {
		a.fallback = text
	}
}

// Assistant dispatches messages to canned responses. It is read-only after
// construction and safe for concurrent use.
type Assistant struct {
	rules    []Rule
	fallback string
	greeting string
}

// New creates an Assistant with the default reading-assistant rules.
func New(opts ...Option) *Assistant {
	a := &Assistant{
		rules:    DefaultRules(),
		fallback: FallbackResponse,
		greeting: Greeting,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Greeting returns the opening message of a conversation.
func (a *Assistant) Greeting() string {
	return a.greeting
}

// Reply returns the response of the first rule matching message.
func (a *Assistant) Reply(message string) Reply {
	lower := strings.ToLower(message)
	for _, r := range a.rules {
		if r.Match != nil && r.Match(lower) {
			return Reply{Rule: r.Name, Text: r.Response}
		}
	}
	return Reply{Text: a.fallback}
}
