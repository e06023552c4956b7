package watcher

import "context"

// Watcher defines the interface for inbox monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one document dropped into the inbox
type EventHandler func(ctx context.Context, filePath string) error

// Filter reports whether a file should be handed to the EventHandler
type Filter func(path string) bool
