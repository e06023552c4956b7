package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/digest-flow/internal/export"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/metrics"
	"github.com/nguyentantai21042004/digest-flow/internal/summarizer"
)

// Process orchestrates one document through the summary pipeline. The
// document ends up in the archived folder on success and in the failed
// folder otherwise.
func (p *implProcessor) Process(ctx context.Context, docPath string) error {
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	startTime := time.Now()
	filename := filepath.Base(docPath)
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting document: %s", docPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Claim the document
	workPath, err := p.moveTo(ctx, docPath, p.paths.Processing)
	if err != nil {
		return fmt.Errorf("claim document: %w", err)
	}

	outputs, err := p.run(ctx, workPath, base)
	if err != nil {
		p.logger.Error(ctx, "Document %s failed: %v", filename, err)
		metrics.RecordDocument(metrics.DocumentFailed)
		if _, moveErr := p.moveTo(ctx, workPath, p.paths.Failed); moveErr != nil {
			p.logger.Warn(ctx, "Failed to move document to failed folder: %v", moveErr)
		}
		return err
	}

	metrics.RecordDocument(metrics.DocumentArchived)

	// Step 5: Archive the original
	if _, err := p.moveTo(ctx, workPath, p.paths.Archived); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Document completed successfully!")
	for _, out := range outputs {
		p.logger.Info(ctx, "Output: %s", out)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) run(ctx context.Context, workPath, base string) ([]string, error) {
	// Step 2: Extract text
	text, err := p.reader.Read(ctx, workPath)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	p.logger.Debug(ctx, "Extracted %d chars from %s", len(text), workPath)

	// Step 3: Summarize
	resp, err := p.summarizer.Summarize(ctx, summarizer.Request{
		Text:      text,
		Precision: p.defaults.Precision,
		Target:    p.defaults.Target,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	// Step 4: Export
	outputs, err := export.Export(ctx, resp.Summary, p.style, p.paths.Output, base, p.formats)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	rolesPath := filepath.Join(p.paths.Output, base+".roles.tsv")
	if err := export.WriteRoles(rolesPath, resp.Roles); err != nil {
		return nil, fmt.Errorf("export roles: %w", err)
	}

	return append(outputs, rolesPath), nil
}
