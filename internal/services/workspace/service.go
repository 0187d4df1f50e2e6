package workspace

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
	"github.com/hanjaplatform/hanja-api/pkg/normalize"
)

// Deps are the collaborators of a Service. Any of them may be nil when the
// matching workspace is not served.
type Deps struct {
	Tokenizer  inference.Tokenizer
	Recognizer EntityRecognizer
	Punctuator Punctuator
	Translator Translator
	History    HistoryStore
}

// Service runs the entity, punctuation and translation workspaces.
type Service struct {
	deps      Deps
	maxTokens int
	observer  SpanObserver
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMaxTokens sets the token limit reported in Stats.
func WithMaxTokens(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTokens = n
		}
	}
}

// WithSpanObserver reports decoded entity labels to o.
func WithSpanObserver(o SpanObserver) Option {
	return func(s *Service) { s.observer = o }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a workspace service.
func NewService(deps Deps, opts ...Option) *Service {
	s := &Service{
		deps:      deps,
		maxTokens: DefaultMaxTokens,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxTokens is the configured token limit.
func (s *Service) MaxTokens() int {
	return s.maxTokens
}

func requireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.ValidationError("text", "Please enter some text to process")
	}
	return nil
}

// recordInput stores the task input for logged-in users. A failed write
// is logged and never fails the task.
func (s *Service) recordInput(ctx context.Context, session auth.Session, action models.Action, details any) {
	if s.deps.History == nil {
		return
	}
	if _, err := s.deps.History.RecordInput(ctx, session, action, details); err != nil {
		s.logger.Warn("failed to save input to history", "action", action, "owner", session.UserID, "error", err)
	}
}

func (s *Service) stats(text string, tok *inference.TokenizeResult) Stats {
	st := Stats{
		Chars:     utf8.RuneCountInString(text),
		MaxTokens: s.maxTokens,
	}
	if tok != nil {
		st.TokenCount = len(tok.TokenIDs)
		st.Tokens = tok.Tokens
		st.TokenIDs = tok.TokenIDs
	}
	st.OverLimit = st.TokenCount > s.maxTokens
	return st
}

// Stats tokenizes text for task and reports its size.
func (s *Service) Stats(ctx context.Context, text string, task inference.Task) (Stats, error) {
	if s.deps.Tokenizer == nil {
		return Stats{}, apperrors.ConfigError("inference.url", "tokenizer not configured")
	}
	tok, err := s.deps.Tokenizer.Tokenize(ctx, text, task)
	if err != nil {
		return Stats{}, err
	}
	return s.stats(text, tok), nil
}

// TranslationStats counts the translation model's tokens for text.
func (s *Service) TranslationStats(ctx context.Context, text string) (Stats, error) {
	if s.deps.Translator == nil {
		return Stats{}, apperrors.ConfigError("translation.url", "translator not configured")
	}
	tok, err := s.deps.Translator.Tokenize(ctx, text)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Chars:      utf8.RuneCountInString(text),
		TokenCount: tok.TokenCount,
		MaxTokens:  s.maxTokens,
	}
	st.OverLimit = st.TokenCount > s.maxTokens
	return st, nil
}

// ProcessNER records the input, tokenizes it, asks the entity model for
// tags and decodes them into styled spans.
func (s *Service) ProcessNER(ctx context.Context, session auth.Session, text string) (*NERResult, error) {
	if err := requireText(text); err != nil {
		return nil, err
	}
	if s.deps.Recognizer == nil {
		return nil, apperrors.ConfigError("inference.url", "entity model not configured")
	}

	s.recordInput(ctx, session, models.ActionNER, models.NERDetails{Text: text})

	st, err := s.Stats(ctx, text, inference.TaskNER)
	if err != nil {
		return nil, err
	}

	results, err := s.deps.Recognizer.PredictNER(ctx, text)
	if err != nil {
		return nil, err
	}
	iob := results[0].IOB

	spans := annotation.ApplyEntityStyles(annotation.Decode(text, annotation.ParseTags(iob)))
	if s.observer != nil {
		labels := make([]string, len(spans))
		for i, sp := range spans {
			labels[i] = sp.Tag
		}
		s.observer.ObserveSpans(labels)
	}

	return &NERResult{
		Text:  text,
		IOB:   iob,
		Pred:  spans,
		User:  annotation.Clone(spans),
		Stats: st,
	}, nil
}

// ProcessPunctuation records the input and restores its punctuation.
// Clean strips existing punctuation first; Normalize applies
// normalize.String to the text sent to the model.
func (s *Service) ProcessPunctuation(ctx context.Context, session auth.Session, req PunctuationRequest) (*PunctuationResult, error) {
	text := req.Text
	if req.Clean {
		text = normalize.CleanText(text)
	}
	if err := requireText(text); err != nil {
		return nil, err
	}
	if s.deps.Punctuator == nil {
		return nil, apperrors.ConfigError("inference.url", "punctuation model not configured")
	}

	style := req.Style
	if style == "" {
		style = inference.StyleComprehensive
	}
	s.recordInput(ctx, session, models.ActionPunctuate, models.PunctuationDetails{Text: text, Mode: style})

	input := text
	if req.Normalize {
		input = normalize.String(text)
	}

	var st Stats
	if s.deps.Tokenizer != nil {
		var err error
		if st, err = s.Stats(ctx, input, inference.TaskPunctuate); err != nil {
			return nil, err
		}
	} else {
		st = s.stats(input, nil)
	}

	out, err := s.deps.Punctuator.Punctuate(ctx, input, style)
	if err != nil {
		return nil, err
	}
	return &PunctuationResult{Input: input, Punctuated: out, Style: style, Stats: st}, nil
}

// StreamTranslation records the input and streams the translation to emit.
// It returns the text emitted so far, also when the stream fails.
func (s *Service) StreamTranslation(ctx context.Context, session auth.Session, req inference.TranslationRequest, emit func(chunk string) error) (string, error) {
	if err := requireText(req.SourceText); err != nil {
		return "", err
	}
	if req.SourceLang == "" || req.TargetLang == "" {
		return "", apperrors.ValidationError("language", "source and target languages are required")
	}
	if s.deps.Translator == nil {
		return "", apperrors.ConfigError("translation.url", "translator not configured")
	}

	s.recordInput(ctx, session, models.ActionTranslate, models.TranslationDetails{
		Text:   req.SourceText,
		Source: req.SourceLang,
		Target: req.TargetLang,
	})

	var sb strings.Builder
	err := s.deps.Translator.Translate(ctx, req, func(chunk string) error {
		sb.WriteString(chunk)
		if emit == nil {
			return nil
		}
		return emit(chunk)
	})
	return sb.String(), err
}

// Save validates details against action's record shape and stores a full
// history record.
func (s *Service) Save(ctx context.Context, session auth.Session, action models.Action, details json.RawMessage) (*models.History, error) {
	if s.deps.History == nil {
		return nil, apperrors.ConfigError("database.path", "history not configured")
	}

	var typed any
	switch action {
	case models.ActionNER:
		var d models.NERDetails
		if err := json.Unmarshal(details, &d); err != nil {
			return nil, apperrors.ValidationError("details", "invalid entity record: "+err.Error())
		}
		typed = d
	case models.ActionPunctuate:
		var d models.PunctuationDetails
		if err := json.Unmarshal(details, &d); err != nil {
			return nil, apperrors.ValidationError("details", "invalid punctuation record: "+err.Error())
		}
		typed = d
	case models.ActionTranslate:
		var d models.TranslationDetails
		if err := json.Unmarshal(details, &d); err != nil {
			return nil, apperrors.ValidationError("details", "invalid translation record: "+err.Error())
		}
		typed = d
	default:
		return nil, apperrors.ValidationError("action", "action must be one of PR, NER, MT")
	}

	return s.deps.History.Save(ctx, session, action, typed)
}

// LoadNER reads a saved entity record and restyles its spans.
func (s *Service) LoadNER(ctx context.Context, session auth.Session, id string) (*LoadedNER, error) {
	if s.deps.History == nil {
		return nil, apperrors.ConfigError("database.path", "history not configured")
	}
	record, err := s.deps.History.Get(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if record.Action != models.ActionNER {
		return nil, apperrors.ValidationError("action", "Invalid history item type")
	}

	var d models.NERDetails
	if err := json.Unmarshal(record.Details, &d); err != nil {
		return nil, apperrors.ValidationError("details", "Failed to load history item")
	}

	return &LoadedNER{
		ID:   record.ID,
		Text: d.Text,
		Pred: annotation.ApplyEntityStyles(d.Pred),
		User: annotation.ApplyEntityStyles(d.User),
	}, nil
}
