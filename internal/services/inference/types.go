package inference

import (
	"context"
	"time"
)

// Task selects which backend model a request is meant for.
type Task string

const (
	TaskNER       Task = "NER"
	TaskPunctuate Task = "PR"
)

// Valid reports whether t names a tokenizing backend.
func (t Task) Valid() bool {
	return t == TaskNER || t == TaskPunctuate
}

func (t Task) tokenizePath() string {
	if t == TaskNER {
		return "/ner/tokenize"
	}
	return "/punc/tokenize"
}

// Punctuation styles accepted by Punctuate.
const (
	StyleSimple        = "simple"
	StyleSimpleSpace   = "simple-space"
	StyleComprehensive = "comprehensive"
)

var styleNames = map[string]string{
	StyleSimple:        "Simple",
	StyleSimpleSpace:   "Simple (w/ space)",
	StyleComprehensive: "Comprehensive",
}

// StyleName maps a style key to the name the backend expects. Unknown
// styles fall back to Comprehensive.
func StyleName(style string) string {
	if name, ok := styleNames[style]; ok {
		return name
	}
	return styleNames[StyleComprehensive]
}

// TokenizeResult is the tokenizer output for one text.
type TokenizeResult struct {
	Text     string   `json:"text"`
	Tokens   []string `json:"tokens"`
	TokenIDs []int    `json:"token_ids"`
}

// Count is the number of tokens, special tokens included.
func (r *TokenizeResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Tokens)
}

// NERResult is one prediction of the entity model. IOB holds the
// comma-joined tag sequence, one tag per character.
type NERResult struct {
	Original string `json:"original"`
	XML      string `json:"xml"`
	IOB      string `json:"iob"`
}

// PunctuationResult is one prediction of the punctuation model.
type PunctuationResult struct {
	Original   string `json:"original"`
	Punctuated string `json:"punctuated"`
}

// TranslationRequest asks for text to be translated between two languages
// named in plain words, e.g. "Hanja" and "Korean".
type TranslationRequest struct {
	SourceLang string `json:"sourceLang" binding:"required"`
	TargetLang string `json:"targetLang" binding:"required"`
	SourceText string `json:"sourceText" binding:"required"`
}

// MTTokenizeResult is the translation model's token count for a text.
type MTTokenizeResult struct {
	Text       string `json:"text"`
	Tokens     []int  `json:"tokens"`
	TokenCount int    `json:"token_count"`
}

// Observer receives the outcome of every backend call.
type Observer interface {
	ObserveInference(operation string, err error, d time.Duration)
}

// Tokenizer counts tokens for a task.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string, task Task) (*TokenizeResult, error)
}
