package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

const translatePrompt = `Translate the text below from %s to %s.
Keep every sentence, in the same order, and keep sentence-ending punctuation.
Reply with the translation only, without notes or quotation marks.

Text:
---
%s
---`

type implGemini struct {
	apiKeys []string
	model   string
	timeout time.Duration
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int

	// generate is swapped out in tests.
	generate func(ctx context.Context, key, prompt string) (string, error)
}

// Translate sends text to Gemini. Rotates API keys on 429 / quota errors.
func (g *implGemini) Translate(ctx context.Context, text string, source, target lang.Language) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", &Error{Source: source, Target: target, Err: ErrNoAPIKeys}
	}

	prompt := fmt.Sprintf(translatePrompt, source.Name(), target.Name(), text)

	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.key()

		out, err := g.generate(ctx, key, prompt)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", &Error{Source: source, Target: target, Err: err}
		}

		out = strings.TrimSpace(out)
		if out == "" {
			return "", &Error{Source: source, Target: target, Err: ErrEmptyResponse}
		}

		g.logger.Debug(ctx, "Translated %d chars %s->%s with key %d", len(text), source, target, idx+1)
		return out, nil
	}

	return "", &Error{Source: source, Target: target, Err: fmt.Errorf("all API keys exhausted: %w", lastErr)}
}

func (g *implGemini) callGemini(ctx context.Context, key, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", ErrEmptyResponse
}

func (g *implGemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey moves past idx unless another caller already did.
func (g *implGemini) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
