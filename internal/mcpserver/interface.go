package mcpserver

import (
	"context"
	"io"
)

// Server exposes summarization as Model Context Protocol tools.
type Server interface {
	// Serve speaks MCP over in and out until ctx is done or in is closed.
	Serve(ctx context.Context, in io.Reader, out io.Writer) error
}
