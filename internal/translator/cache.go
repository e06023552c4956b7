package translator

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nguyentantai21042004/digest-flow/internal/lang"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

type cacheKey struct {
	source lang.Language
	target lang.Language
	text   string
}

type implCached struct {
	next   Translator
	cache  *lru.Cache[cacheKey, string]
	logger logger.Logger
}

// NewCached wraps next with an LRU of the last size translations. Failed
// translations are not cached.
func NewCached(next Translator, size int, log logger.Logger) (Translator, error) {
	cache, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("create translation cache: %w", err)
	}
	return &implCached{next: next, cache: cache, logger: log}, nil
}

func (c *implCached) Translate(ctx context.Context, text string, source, target lang.Language) (string, error) {
	key := cacheKey{source: source, target: target, text: text}
	if out, ok := c.cache.Get(key); ok {
		c.logger.Debug(ctx, "Translation cache hit %s->%s (%d chars)", source, target, len(text))
		return out, nil
	}

	out, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, out)
	return out, nil
}
