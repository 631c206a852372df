// Package textproc composes segmentation, correction, summarization and
// transliteration behind one Engine.
package textproc

import (
	"errors"
	"fmt"
	"strings"
)

// Operation names one engine operation.
type Operation string

const (
	OpSegment       Operation = "segment"
	OpCorrect       Operation = "correct"
	OpSummarize     Operation = "summarize"
	OpTransliterate Operation = "transliterate"
)

// Operations lists every operation in its canonical order.
var Operations = []Operation{OpSegment, OpCorrect, OpSummarize, OpTransliterate}

var (
	// ErrEmptyInput reports text that is empty or only whitespace.
	ErrEmptyInput = errors.New("no text entered")
	// ErrUnknownOperation reports an operation name ParseOperation does not know.
	ErrUnknownOperation = errors.New("unknown operation")
)

// ParseOperation converts a name such as "Summarize" into an Operation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Operations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// ParseOperations parses every name in names, stopping at the first error.
func ParseOperations(names []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(names))
	for _, n := range names {
		op, err := ParseOperation(n)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ValidateInput rejects empty or whitespace-only text. It is the check
// callers run before invoking the engine; the engine itself accepts any
// string.
func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}
