package translator

import (
	"context"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

// Translator translates text between two supported languages.
type Translator interface {
	Translate(ctx context.Context, text string, source, target lang.Language) (string, error)
}
