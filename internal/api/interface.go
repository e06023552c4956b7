package api

import (
	"context"
	"net/http"
)

// Server exposes the summarizer over HTTP.
type Server interface {
	http.Handler

	// Start listens until ctx is canceled, then shuts down gracefully.
	Start(ctx context.Context) error
}
