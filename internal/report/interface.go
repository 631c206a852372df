package report

import "context"

// Writer renders the results for one document. Stage writes them to a
// private directory; nothing appears in the output directory until the
// returned Staged is committed.
type Writer interface {
	Stage(ctx context.Context, r Result) (*Staged, error)
}
