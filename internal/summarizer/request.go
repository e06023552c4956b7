package summarizer

import (
	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/roles"
)

// Request is one document to summarize.
type Request struct {
	Text      string        `json:"text" validate:"notblank"`
	Precision Precision     `json:"precision" validate:"required,oneof=high medium low"`
	Target    lang.Language `json:"target" validate:"required,oneof=fr en de es"`
}

// Response carries the summary in the target language and its role breakdown.
type Response struct {
	RequestID      string         `json:"request_id"`
	Summary        string         `json:"summary"`
	Language       lang.Language  `json:"language"`
	SourceLanguage lang.Language  `json:"source_language"`
	Roles          []roles.Record `json:"roles"`

	// Selected holds the chosen pivot-language sentences, best first.
	Selected []annotator.Sentence `json:"-"`
}
