package summarizer

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/nguyentantai21042004/digest-flow/internal/annotator"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/translator"
)

type implSummarizer struct {
	annotator  annotator.Annotator
	translator translator.Translator
	logger     logger.Logger
	validate   *validator.Validate
}

// New creates a Summarizer that scores in the pivot language using ann and
// crosses languages with tr.
func New(ann annotator.Annotator, tr translator.Translator, log logger.Logger) Summarizer {
	v := validator.New()
	// Registration only fails on an empty tag name.
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &implSummarizer{
		annotator:  ann,
		translator: tr,
		logger:     log,
		validate:   v,
	}
}
