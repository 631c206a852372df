package textproc

import (
	"github.com/nguyentantai21042004/readaid/pkg/correct"
	"github.com/nguyentantai21042004/readaid/pkg/summarize"
	"github.com/nguyentantai21042004/readaid/pkg/translit"
)

// Option configures an Engine.
type Option func(*implEngine)

// WithCorrector replaces the default correction engine.
func WithCorrector(c *correct.Engine) Option {
	return func(e *implEngine) {
		if c != nil {
			e.corrector = c
		}
	}
}

// WithTable replaces the built-in transliteration table.
func WithTable(t *translit.Table) Option {
	return func(e *implEngine) {
		if t != nil {
			e.table = t
		}
	}
}

// WithBudget sets the summary budget used by Run.
func WithBudget(b summarize.Budget) Option {
	return func(e *implEngine) {
		e.budget = b
	}
}

// WithDirection sets the transliteration direction used by Run.
func WithDirection(d translit.Direction) Option {
	return func(e *implEngine) {
		e.direction = d
	}
}

type implEngine struct {
	corrector *correct.Engine
	table     *translit.Table
	budget    summarize.Budget
	direction translit.Direction
}

// New creates an Engine. Without options it uses the built-in correction
// rules, the Hinglish table, the default budget and the forward direction.
func New(opts ...Option) Engine {
	e := &implEngine{
		corrector: correct.New(),
		table:     translit.Hinglish(),
		direction: translit.Forward,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
