package inference

import (
	"context"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// ServiceName identifies the tokenize/NER/punctuation backend in errors.
const ServiceName = "inference"

// Config holds configuration for the inference client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the backend that hosts the tokenizers, the entity model
// and the punctuation model. Requests carry the API key in X-API-Key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	auth       header
	executor   *Executor
}

// NewClient creates a new inference client
func NewClient(cfg Config, executor *Executor) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if executor == nil {
		executor = NewExecutor(BreakerSettings{}, nil)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		auth:       header{name: "X-API-Key", value: cfg.APIKey},
		executor:   executor,
	}
}

func (c *Client) post(ctx context.Context, operation, path string, payload, out any) error {
	return c.executor.Execute(ctx, ServiceName, operation, func(ctx context.Context) error {
		return postJSON(ctx, c.httpClient, ServiceName, c.baseURL, path, c.auth, payload, out)
	})
}

// Tokenize runs the tokenizer of task's model over text, special tokens
// included. Blank text yields an empty result without calling the backend.
func (c *Client) Tokenize(ctx context.Context, text string, task Task) (*TokenizeResult, error) {
	if !task.Valid() {
		return nil, apperrors.ValidationError("taskType", "Valid taskType (NER or PR) is required")
	}
	if strings.TrimSpace(text) == "" {
		return &TokenizeResult{Tokens: []string{}, TokenIDs: []int{}}, nil
	}

	payload := struct {
		Text             string `json:"text"`
		AddSpecialTokens bool   `json:"add_special_tokens"`
	}{Text: text, AddSpecialTokens: true}

	var out TokenizeResult
	if err := c.post(ctx, "tokenize_"+strings.ToLower(string(task)), task.tokenizePath(), payload, &out); err != nil {
		return nil, err
	}
	if out.Tokens == nil {
		out.Tokens = []string{}
	}
	if out.TokenIDs == nil {
		out.TokenIDs = []int{}
	}
	return &out, nil
}

// PredictNER returns the entity predictions for text. The first result
// belongs to text; an empty result list is a NO_RESULTS error.
func (c *Client) PredictNER(ctx context.Context, text string) ([]NERResult, error) {
	payload := struct {
		Texts []string `json:"texts"`
	}{Texts: []string{text}}

	var out struct {
		Results []NERResult `json:"results"`
	}
	if err := c.post(ctx, "ner_predict", "/ner/predict", payload, &out); err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, apperrors.NoResultsError(ServiceName)
	}
	return out.Results, nil
}

// Punctuate restores punctuation in text using style (see StyleName).
func (c *Client) Punctuate(ctx context.Context, text, style string) (string, error) {
	payload := struct {
		Texts []string `json:"texts"`
		Style string   `json:"style"`
	}{Texts: []string{text}, Style: StyleName(style)}

	var out struct {
		Results []PunctuationResult `json:"results"`
	}
	if err := c.post(ctx, "punc_predict", "/punc/predict", payload, &out); err != nil {
		return "", err
	}
	if len(out.Results) == 0 {
		return "", apperrors.NoResultsError(ServiceName)
	}
	return out.Results[0].Punctuated, nil
}
