package hanzi

import (
	"context"
	"log/slog"
	"time"
	"unicode"

	"github.com/hanjaplatform/hanja-api/internal/services/cache"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// Service looks up character definitions.
type Service struct {
	dict  *Dictionary
	cache cache.Cache
	ttl   time.Duration
}

// NewService creates a glossary service. c may be nil.
func NewService(dict *Dictionary, c cache.Cache, ttl time.Duration) *Service {
	if dict == nil {
		dict = NewDictionary()
	}
	return &Service{dict: dict, cache: c, ttl: ttl}
}

// Lookup returns the definitions of every non-whitespace character of text.
// Characters without definitions are left out.
func (s *Service) Lookup(ctx context.Context, text string) (map[string][]string, error) {
	if text == "" {
		return nil, apperrors.ValidationError("text", "Text is required")
	}

	key := cache.Key("hanzi", text)
	if s.cache != nil {
		var cached map[string][]string
		if cache.GetJSON(ctx, s.cache, key, &cached) {
			return cached, nil
		}
	}

	out := make(map[string][]string)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if defs := s.dict.Definitions(r); len(defs) > 0 {
			out[string(r)] = defs
		}
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, out, s.ttl); err != nil {
			slog.Warn("failed to cache definitions", "error", err)
		}
	}
	return out, nil
}
