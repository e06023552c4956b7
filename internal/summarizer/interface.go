package summarizer

import "context"

// Summarizer shortens a document into the requested language and breaks the
// result down into grammatical roles.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (*Response, error)
}
