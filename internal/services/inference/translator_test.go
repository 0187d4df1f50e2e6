package inference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

func streamHandler(t *testing.T, chunks []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var body chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Stream)
		assert.Equal(t, DefaultModel, body.Model)
		assert.Equal(t, 42, body.Seed)
		assert.InDelta(t, 0.4, body.FrequencyPenalty, 1e-9)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "You are a helpful assistant.", body.Messages[0].Content)
		assert.Equal(t, "Translate the following text from Hanja into Korean.\nHanja: 學而\nKorean: ", body.Messages[1].Content)

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		_, _ = fmt.Fprint(w, ": keep-alive\n\n")
		_, _ = fmt.Fprint(w, `data: {"choices":[{"delta":{"role":"assistant"}}]}`+"\n\n")
		for _, c := range chunks {
			payload, _ := json.Marshal(map[string]any{
				"choices": []any{map[string]any{"delta": map[string]any{"content": c}}},
			})
			_, _ = fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
		_, _ = fmt.Fprint(w, "data: [DONE]\n\n")
		_, _ = fmt.Fprint(w, `data: {"choices":[{"delta":{"content":"ignored"}}]}`+"\n\n")
	}
}

func newTestTranslator(t *testing.T, handler http.HandlerFunc) *Translator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewTranslator(TranslatorConfig{
		BaseURL:          server.URL,
		APIKey:           "key",
		Seed:             42,
		FrequencyPenalty: 0.4,
		Timeout:          5 * time.Second,
	}, nil)
}

var translateReq = TranslationRequest{SourceLang: "Hanja", TargetLang: "Korean", SourceText: "學而"}

func TestTranslator_Translate(t *testing.T) {
	tr := newTestTranslator(t, streamHandler(t, []string{"배우고", " ", "때때로"}))

	var chunks []string
	err := tr.Translate(context.Background(), translateReq, func(chunk string) error {
		chunks = append(chunks, chunk)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"배우고", " ", "때때로"}, chunks)
}

func TestTranslator_SinkErrorStopsStream(t *testing.T) {
	tr := newTestTranslator(t, streamHandler(t, []string{"a", "b", "c"}))
	errGone := errors.New("client gone")

	var chunks []string
	err := tr.Translate(context.Background(), translateReq, func(chunk string) error {
		chunks = append(chunks, chunk)
		return errGone
	})
	assert.ErrorIs(t, err, errGone)
	assert.Equal(t, []string{"a"}, chunks)
	assert.Equal(t, "closed", tr.executor.State("translate").String())
}

func TestTranslator_TranslateFailure(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusTooManyRequests)
	})

	err := tr.Translate(context.Background(), translateReq, func(string) error { return nil })
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeExternalService))
}

func TestTranslator_Tokenize(t *testing.T) {
	tr := newTestTranslator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tokenize", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultModel, body["model"])
		assert.Equal(t, "學而", body["prompt"])
		assert.Equal(t, false, body["add_special_tokens"])
		_, _ = w.Write([]byte(`{"tokens":[11,12,13],"count":3}`))
	})

	result, err := tr.Tokenize(context.Background(), "學而")
	require.NoError(t, err)
	assert.Equal(t, "學而", result.Text)
	assert.Equal(t, 3, result.TokenCount)

	empty, err := tr.Tokenize(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TokenCount)
	assert.Empty(t, empty.Text)
}

func TestReadEvents(t *testing.T) {
	stream := strings.Join([]string{
		"event: message",
		"data: first",
		"",
		"data:second",
		"id: 3",
		"data: [DONE]",
		"data: after",
	}, "\n")

	var got []string
	err := readEvents(strings.NewReader(stream), func(data string) (bool, error) {
		got = append(got, data)
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestPrompt(t *testing.T) {
	assert.Equal(t,
		"Translate the following text from Hanja into English.\nHanja: 王\nEnglish: ",
		Prompt("Hanja", "English", "王"))
}
