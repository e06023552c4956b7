package processor

import "context"

// Processor turns one inbox document into exported summaries
type Processor interface {
	Process(ctx context.Context, docPath string) error
}
