package annotator

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

// ErrUnsupportedLanguage is wrapped by Error when no model is configured.
var ErrUnsupportedLanguage = errors.New("no model configured for language")

// ErrClosed is wrapped by Error once the registry has been closed.
var ErrClosed = errors.New("annotator registry closed")

// Error reports a failure to annotate text in a given language.
type Error struct {
	Language lang.Language
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("annotate %s text: %v", e.Language, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
