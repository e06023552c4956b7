package ingest

import (
	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/pkg/executor"
)

type implReader struct {
	executor  executor.Executor
	pdfToText string
}

// New creates a Reader. PDF text is extracted with the pdftotext binary.
func New(cfg config.IngestConfig, exec executor.Executor) Reader {
	return &implReader{
		executor:  exec,
		pdfToText: cfg.PDFToText,
	}
}
