package metrics

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
	"github.com/nguyentantai21042004/digest-flow/internal/translator"
)

// Outcome labels a Summarize result.
func Outcome(err error) string {
	var (
		verr *summarizer.ValidationError
		terr *translator.Error
		aerr *annotator.Error
	)
	switch {
	case err == nil:
		return StatusOK
	case errors.As(err, &verr):
		return StatusInvalid
	case errors.Is(err, summarizer.ErrEmptyContent):
		return StatusEmpty
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &terr), errors.As(err, &aerr):
		return StatusUpstream
	default:
		return StatusError
	}
}
