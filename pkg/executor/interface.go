package executor

import (
	"context"
	"io"
)

// Executor runs external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithInput runs the command with stdin read from input.
	ExecuteWithInput(ctx context.Context, input io.Reader, name string, args ...string) (string, error)
}
