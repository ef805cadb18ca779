package watcher

import "context"

// Watcher re-runs a handler whenever a watched file changes.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error
