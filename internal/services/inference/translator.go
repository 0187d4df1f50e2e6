package inference

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// TranslationServiceName identifies the translation server in errors.
const TranslationServiceName = "translation"

// DefaultModel is the translation model served by the backend.
const DefaultModel = "seyoungsong/Qwen2-7B-HanjaMT-AJD-KLC-AWQ"

// TranslatorConfig holds configuration for the translation client
type TranslatorConfig struct {
	BaseURL          string
	APIKey           string
	Model            string
	SystemPrompt     string
	Temperature      float64
	Seed             int
	FrequencyPenalty float64
	Timeout          time.Duration
}

// Translator talks to an OpenAI-compatible completion server.
type Translator struct {
	httpClient *http.Client
	cfg        TranslatorConfig
	auth       header
	executor   *Executor
}

// NewTranslator creates a new translation client. Timeout bounds the
// tokenize call and the wait for the first streamed byte; the stream
// itself runs until the server finishes or ctx is done.
func NewTranslator(cfg TranslatorConfig, executor *Executor) *Translator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8001"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = "You are a helpful assistant."
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if executor == nil {
		executor = NewExecutor(BreakerSettings{}, nil)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = cfg.Timeout

	auth := header{name: "Authorization"}
	if cfg.APIKey != "" {
		auth.value = "Bearer " + cfg.APIKey
	}

	return &Translator{
		httpClient: &http.Client{Transport: transport},
		cfg:        cfg,
		auth:       auth,
		executor:   executor,
	}
}

// Prompt is the user message sent for a translation.
func Prompt(sourceLang, targetLang, text string) string {
	return fmt.Sprintf("Translate the following text from %s into %s.\n%s: %s\n%s: ",
		sourceLang, targetLang, sourceLang, text, targetLang)
}

// Tokenize counts the translation model's tokens for text without special
// tokens. Blank text yields an empty result without calling the server.
func (t *Translator) Tokenize(ctx context.Context, text string) (*MTTokenizeResult, error) {
	if strings.TrimSpace(text) == "" {
		return &MTTokenizeResult{Tokens: []int{}}, nil
	}

	payload := struct {
		Model            string `json:"model"`
		Prompt           string `json:"prompt"`
		AddSpecialTokens bool   `json:"add_special_tokens"`
	}{Model: t.cfg.Model, Prompt: text}

	var out struct {
		Tokens []int `json:"tokens"`
	}
	err := t.executor.Execute(ctx, TranslationServiceName, "tokenize_mt", func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
		return postJSON(ctx, t.httpClient, TranslationServiceName, t.cfg.BaseURL, "/tokenize", t.auth, payload, &out)
	})
	if err != nil {
		return nil, err
	}
	if out.Tokens == nil {
		out.Tokens = []int{}
	}
	return &MTTokenizeResult{Text: text, Tokens: out.Tokens, TokenCount: len(out.Tokens)}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Stream           bool          `json:"stream"`
	Temperature      float64       `json:"temperature"`
	Seed             int           `json:"seed"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Translate streams the translation of req. emit receives every non-empty
// content chunk in order; an error from emit stops the stream and is
// returned as is.
func (t *Translator) Translate(ctx context.Context, req TranslationRequest, emit func(chunk string) error) error {
	payload := chatRequest{
		Model: t.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: t.cfg.SystemPrompt},
			{Role: "user", Content: Prompt(req.SourceLang, req.TargetLang, req.SourceText)},
		},
		Stream:           true,
		Temperature:      t.cfg.Temperature,
		Seed:             t.cfg.Seed,
		FrequencyPenalty: t.cfg.FrequencyPenalty,
	}

	var sinkErr error
	err := t.executor.Execute(ctx, TranslationServiceName, "translate", func(ctx context.Context) error {
		httpReq, err := newRequest(ctx, t.cfg.BaseURL, "/v1/chat/completions", payload, t.auth)
		if err != nil {
			return err
		}
		httpReq.Header.Set("Accept", "text/event-stream")

		resp, err := t.httpClient.Do(httpReq)
		if err != nil {
			return transportError(TranslationServiceName, "/v1/chat/completions", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return statusError(TranslationServiceName, "/v1/chat/completions", resp)
		}

		return readEvents(resp.Body, func(data string) (bool, error) {
			var chunk chatChunk
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				return false, apperrors.ExternalServiceError(TranslationServiceName, fmt.Errorf("decode chunk: %w", err))
			}
			if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == "" {
				return true, nil
			}
			if err := emit(chunk.Choices[0].Delta.Content); err != nil {
				sinkErr = err
				return false, nil
			}
			return true, nil
		})
	})
	if sinkErr != nil {
		return sinkErr
	}
	return err
}

// readEvents reads a server-sent event stream and passes each data payload
// to handle until the stream ends, "[DONE]" arrives or handle returns false.
func readEvents(r io.Reader, handle func(data string) (bool, error)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "" {
			continue
		}
		if data == "[DONE]" {
			return nil
		}
		more, err := handle(data)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return apperrors.ExternalServiceError(TranslationServiceName, fmt.Errorf("read stream: %w", err))
	}
	return nil
}
