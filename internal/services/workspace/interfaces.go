package workspace

import (
	"context"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

// DefaultMaxTokens is the model input limit shown next to token counts.
const DefaultMaxTokens = 512

// EntityRecognizer predicts entity tags.
type EntityRecognizer interface {
	PredictNER(ctx context.Context, text string) ([]inference.NERResult, error)
}

// Punctuator restores punctuation.
type Punctuator interface {
	Punctuate(ctx context.Context, text, style string) (string, error)
}

// Translator streams translations and counts translation tokens.
type Translator interface {
	Tokenize(ctx context.Context, text string) (*inference.MTTokenizeResult, error)
	Translate(ctx context.Context, req inference.TranslationRequest, emit func(chunk string) error) error
}

// HistoryStore is the part of the history service the workspaces use.
type HistoryStore interface {
	RecordInput(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error)
	Save(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error)
	Get(ctx context.Context, session auth.Session, id string) (*models.History, error)
}

// SpanObserver counts decoded entities.
type SpanObserver interface {
	ObserveSpans(labels []string)
}

// Stats describes the size of a workspace input.
type Stats struct {
	Chars      int      `json:"chars"`
	TokenCount int      `json:"tokenCount"`
	MaxTokens  int      `json:"maxTokens"`
	OverLimit  bool     `json:"overLimit"`
	Tokens     []string `json:"tokens,omitempty"`
	TokenIDs   []int    `json:"token_ids,omitempty"`
}

// NERResult is the outcome of an entity recognition run. User starts as a
// copy of Pred and is what the editor then changes.
type NERResult struct {
	Text  string            `json:"text"`
	IOB   string            `json:"iob"`
	Pred  []annotation.Span `json:"pred"`
	User  []annotation.Span `json:"user"`
	Stats Stats             `json:"stats"`
}

// PunctuationRequest asks for punctuation to be restored.
type PunctuationRequest struct {
	Text      string `json:"text" binding:"required"`
	Style     string `json:"style"`
	Normalize bool   `json:"normalize"`
	Clean     bool   `json:"clean"`
}

// PunctuationResult is the outcome of a punctuation run.
type PunctuationResult struct {
	Input      string `json:"input"`
	Punctuated string `json:"punctuatedText"`
	Style      string `json:"style"`
	Stats      Stats  `json:"stats"`
}

// LoadedNER is a saved entity record ready for the editor.
type LoadedNER struct {
	ID   string            `json:"id"`
	Text string            `json:"text"`
	Pred []annotation.Span `json:"pred"`
	User []annotation.Span `json:"user"`
}
