package executor

import "context"

// Executor runs external commands and returns their stdout.
type Executor interface {
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
