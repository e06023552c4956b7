package annotator

import (
	"context"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

// Annotator splits text into sentences of tokens tagged with part of speech
// and dependency label, using the model of the given language.
type Annotator interface {
	Annotate(ctx context.Context, text string, language lang.Language) ([]Sentence, error)
}

// Registry is an Annotator backed by one long-lived model per language.
// Models load on first use and stay loaded until Close.
type Registry interface {
	Annotator
	Close() error
}
