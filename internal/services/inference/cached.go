package inference

import (
	"context"
	"log/slog"
	"time"

	"github.com/hanjaplatform/hanja-api/internal/services/cache"
)

// CachedTokenizer remembers tokenizer output per task and text.
type CachedTokenizer struct {
	next  Tokenizer
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedTokenizer wraps next with c. A zero ttl uses cache.DefaultTTL.
func NewCachedTokenizer(next Tokenizer, c cache.Cache, ttl time.Duration) *CachedTokenizer {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &CachedTokenizer{next: next, cache: c, ttl: ttl}
}

// Tokenize returns the cached result or asks the wrapped tokenizer.
func (t *CachedTokenizer) Tokenize(ctx context.Context, text string, task Task) (*TokenizeResult, error) {
	key := cache.Key("tokenize", string(task), text)

	var cached TokenizeResult
	if cache.GetJSON(ctx, t.cache, key, &cached) {
		return &cached, nil
	}

	result, err := t.next.Tokenize(ctx, text, task)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, t.cache, key, result, t.ttl); err != nil {
		slog.Warn("failed to cache tokenize result", "task", task, "error", err)
	}
	return result, nil
}
