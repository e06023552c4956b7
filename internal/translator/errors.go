package translator

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
)

var (
	ErrNoAPIKeys     = errors.New("no API keys configured")
	ErrEmptyResponse = errors.New("empty translation")
)

// Error reports a failed translation between Source and Target.
type Error struct {
	Source lang.Language
	Target lang.Language
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translate %s->%s: %v", e.Source, e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
