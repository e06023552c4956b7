package summarizer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
	"github.com/nguyentantai21042004/digest-flow/internal/roles"
)

// Summarize detects the source language, scores the text in the pivot
// language, localizes the summary and extracts its grammatical roles.
// Any collaborator failure aborts the run; nothing partial is returned.
func (s *implSummarizer) Summarize(ctx context.Context, req Request) (*Response, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, newValidationError(err)
	}

	reqID := logger.RequestID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
		ctx = logger.WithRequestID(ctx, reqID)
	}
	startTime := time.Now()

	// Step 1: Detect
	source := lang.Detect(req.Text)
	s.logger.Info(ctx, "Detected source language: %s (target %s, precision %s)", source, req.Target, req.Precision)

	// Step 2: Normalize to the pivot language
	text := req.Text
	if source != lang.Pivot {
		translated, err := s.translator.Translate(ctx, text, source, lang.Pivot)
		if err != nil {
			return nil, fmt.Errorf("normalize: %w", err)
		}
		text = translated
	}

	// Step 3: Score and select
	sentences, err := s.annotator.Annotate(ctx, text, lang.Pivot)
	if err != nil {
		return nil, fmt.Errorf("annotate source: %w", err)
	}
	selected, err := selectSentences(sentences, req.Precision)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	summary := joinSentences(selected)
	s.logger.Info(ctx, "Selected %d of %d sentences", len(selected), len(sentences))

	// Step 4: Localize
	if req.Target != lang.Pivot {
		localized, err := s.translator.Translate(ctx, summary, lang.Pivot, req.Target)
		if err != nil {
			return nil, fmt.Errorf("localize: %w", err)
		}
		summary = localized
	}

	// Step 5: Analyze the summary in its own language
	analyzed, err := s.annotator.Annotate(ctx, summary, req.Target)
	if err != nil {
		return nil, fmt.Errorf("annotate summary: %w", err)
	}
	records := roles.Extract(analyzed)

	s.logger.Info(ctx, "Summary ready in %s: %d chars, %d role records, took %s",
		req.Target, len(summary), len(records), time.Since(startTime))

	return &Response{
		RequestID:      reqID,
		Summary:        summary,
		Language:       req.Target,
		SourceLanguage: source,
		Roles:          records,
		Selected:       selected,
	}, nil
}
