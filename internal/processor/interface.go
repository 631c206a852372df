package processor

import "context"

// Processor turns one input document into reports.
type Processor interface {
	Process(ctx context.Context, path string) error
}
