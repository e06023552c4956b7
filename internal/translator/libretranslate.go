package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

type implLibreTranslate struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

func (l *implLibreTranslate) Translate(ctx context.Context, text string, source, target lang.Language) (string, error) {
	out, err := l.translate(ctx, text, source, target)
	if err != nil {
		return "", &Error{Source: source, Target: target, Err: err}
	}
	return out, nil
}

func (l *implLibreTranslate) translate(ctx context.Context, text string, source, target lang.Language) (string, error) {
	body, err := json.Marshal(libreRequest{
		Q:      text,
		Source: source.String(),
		Target: target.String(),
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out libreResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("status %d: decode response: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, msg)
	}

	translated := strings.TrimSpace(out.TranslatedText)
	if translated == "" {
		return "", ErrEmptyResponse
	}

	l.logger.Debug(ctx, "LibreTranslate %s->%s: %d chars in, %d out", source, target, len(text), len(translated))
	return translated, nil
}
