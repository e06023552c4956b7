package ingest

import "context"

// Reader extracts plain text from a document file.
type Reader interface {
	Read(ctx context.Context, path string) (string, error)
}
