package processor

import (
	"fmt"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/export"
	"github.com/nguyentantai21042004/digest-flow/internal/ingest"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

type implProcessor struct {
	paths      config.PathsConfig
	reader     ingest.Reader
	summarizer summarizer.Summarizer
	logger     logger.Logger

	defaults summarizer.Defaults
	style    export.Style
	formats  []export.Format
}

// New creates a Processor. The summary and export sections of cfg are parsed
// once here so a bad value fails at startup rather than per document.
func New(cfg *config.Config, reader ingest.Reader, sum summarizer.Summarizer, log logger.Logger) (Processor, error) {
	defaults, err := summarizer.DefaultsFromConfig(cfg.Summary)
	if err != nil {
		return nil, err
	}
	emphasis, err := export.ParseEmphasis(cfg.Export.Emphasis)
	if err != nil {
		return nil, fmt.Errorf("export.emphasis: %w", err)
	}
	formats, err := export.ParseFormats(cfg.Export.Formats)
	if err != nil {
		return nil, fmt.Errorf("export.formats: %w", err)
	}

	return &implProcessor{
		paths:      cfg.Paths,
		reader:     reader,
		summarizer: sum,
		logger:     log,
		defaults:   defaults,
		style: export.Style{
			FontFamily: cfg.Export.FontFamily,
			FontSize:   cfg.Export.FontSize,
			Emphasis:   emphasis,
		},
		formats: formats,
	}, nil
}
