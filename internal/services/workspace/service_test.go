package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Tokenize(ctx context.Context, text string, task inference.Task) (*inference.TokenizeResult, error) {
	args := m.Called(ctx, text, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inference.TokenizeResult), args.Error(1)
}

func (m *MockBackend) PredictNER(ctx context.Context, text string) ([]inference.NERResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inference.NERResult), args.Error(1)
}

func (m *MockBackend) Punctuate(ctx context.Context, text, style string) (string, error) {
	args := m.Called(ctx, text, style)
	return args.String(0), args.Error(1)
}

type MockTranslator struct {
	mock.Mock
	chunks []string
}

func (m *MockTranslator) Tokenize(ctx context.Context, text string) (*inference.MTTokenizeResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inference.MTTokenizeResult), args.Error(1)
}

func (m *MockTranslator) Translate(ctx context.Context, req inference.TranslationRequest, emit func(chunk string) error) error {
	args := m.Called(ctx, req)
	for _, c := range m.chunks {
		if err := emit(c); err != nil {
			return err
		}
	}
	return args.Error(0)
}

type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) RecordInput(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error) {
	args := m.Called(ctx, session, action, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.History), args.Error(1)
}

func (m *MockHistory) Save(ctx context.Context, session auth.Session, action models.Action, details any) (*models.History, error) {
	args := m.Called(ctx, session, action, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.History), args.Error(1)
}

func (m *MockHistory) Get(ctx context.Context, session auth.Session, id string) (*models.History, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.History), args.Error(1)
}

type labelCounter struct {
	labels []string
}

func (c *labelCounter) ObserveSpans(labels []string) { c.labels = append(c.labels, labels...) }

var alice = auth.Session{UserID: "alice"}

func TestService_ProcessNER(t *testing.T) {
	ctx := context.Background()
	backend := new(MockBackend)
	hist := new(MockHistory)
	counter := &labelCounter{}
	svc := NewService(Deps{Tokenizer: backend, Recognizer: backend, History: hist},
		WithMaxTokens(4), WithSpanObserver(counter))

	text := "王安石至京"
	hist.On("RecordInput", ctx, alice, models.ActionNER, models.NERDetails{Text: text}).Return(&models.History{}, nil)
	backend.On("Tokenize", ctx, text, inference.TaskNER).Return(&inference.TokenizeResult{
		Text:     text,
		Tokens:   []string{"[CLS]", "王", "安", "石", "至", "京", "[SEP]"},
		TokenIDs: []int{101, 1, 2, 3, 4, 5, 102},
	}, nil)
	backend.On("PredictNER", ctx, text).Return([]inference.NERResult{{
		Original: text,
		IOB:      "B-ajd_person, I-ajd_person, I-ajd_person, O, B-ajd_location",
	}}, nil)

	result, err := svc.ProcessNER(ctx, alice, text)
	require.NoError(t, err)

	want := []annotation.Span{
		{Start: 0, End: 3, Text: "王安石", Tag: "PER", Color: "#fecaca"},
		{Start: 4, End: 5, Text: "京", Tag: "LOC", Color: "#bbf7d0"},
	}
	assert.Equal(t, want, result.Pred)
	assert.Equal(t, want, result.User)
	assert.Equal(t, 5, result.Stats.Chars)
	assert.Equal(t, 7, result.Stats.TokenCount)
	assert.True(t, result.Stats.OverLimit)
	assert.Equal(t, []string{"PER", "LOC"}, counter.labels)

	result.User[0].Tag = "ORG"
	assert.Equal(t, "PER", result.Pred[0].Tag, "user spans must not alias model spans")

	hist.AssertExpectations(t)
	backend.AssertExpectations(t)
}

func TestService_ProcessNERErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("blank text", func(t *testing.T) {
		svc := NewService(Deps{Recognizer: new(MockBackend)})
		_, err := svc.ProcessNER(ctx, alice, "   ")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("history failure does not stop the task", func(t *testing.T) {
		backend := new(MockBackend)
		hist := new(MockHistory)
		svc := NewService(Deps{Tokenizer: backend, Recognizer: backend, History: hist})

		hist.On("RecordInput", ctx, alice, models.ActionNER, mock.Anything).Return(nil, errors.New("db locked"))
		backend.On("Tokenize", ctx, "王", inference.TaskNER).Return(&inference.TokenizeResult{TokenIDs: []int{1}}, nil)
		backend.On("PredictNER", ctx, "王").Return([]inference.NERResult{{IOB: "O"}}, nil)

		result, err := svc.ProcessNER(ctx, alice, "王")
		require.NoError(t, err)
		assert.Empty(t, result.Pred)
		assert.NotNil(t, result.Pred)
	})

	t.Run("backend failure", func(t *testing.T) {
		backend := new(MockBackend)
		svc := NewService(Deps{Tokenizer: backend, Recognizer: backend})

		backend.On("Tokenize", ctx, "王", inference.TaskNER).Return(&inference.TokenizeResult{}, nil)
		backend.On("PredictNER", ctx, "王").Return(nil, apperrors.NoResultsError(inference.ServiceName))

		_, err := svc.ProcessNER(ctx, alice, "王")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNoResults))
	})
}

func TestService_ProcessPunctuation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		req       PunctuationRequest
		wantInput string
		wantStyle string
	}{
		{
			name:      "plain",
			req:       PunctuationRequest{Text: "學而時習之", Style: "simple"},
			wantInput: "學而時習之",
			wantStyle: "simple",
		},
		{
			name:      "clean strips punctuation",
			req:       PunctuationRequest{Text: "學而，時習之。", Clean: true},
			wantInput: "學而時習之",
			wantStyle: "comprehensive",
		},
		{
			name:      "normalize",
			req:       PunctuationRequest{Text: "  學而  時習之 ", Normalize: true, Style: "simple-space"},
			wantInput: "學而 時習之",
			wantStyle: "simple-space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := new(MockBackend)
			hist := new(MockHistory)
			svc := NewService(Deps{Punctuator: backend, History: hist})

			hist.On("RecordInput", ctx, alice, models.ActionPunctuate, mock.AnythingOfType("models.PunctuationDetails")).Return(&models.History{}, nil)
			backend.On("Punctuate", ctx, tt.wantInput, tt.wantStyle).Return(tt.wantInput+"。", nil)

			result, err := svc.ProcessPunctuation(ctx, alice, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInput+"。", result.Punctuated)
			assert.Equal(t, tt.wantInput, result.Input)
			backend.AssertExpectations(t)
		})
	}

	t.Run("clean leaves nothing", func(t *testing.T) {
		svc := NewService(Deps{Punctuator: new(MockBackend)})
		_, err := svc.ProcessPunctuation(ctx, alice, PunctuationRequest{Text: "。，", Clean: true})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})
}

func TestService_StreamTranslation(t *testing.T) {
	ctx := context.Background()
	req := inference.TranslationRequest{SourceLang: "Hanja", TargetLang: "Korean", SourceText: "學而"}

	t.Run("accumulates chunks", func(t *testing.T) {
		tr := &MockTranslator{chunks: []string{"배우고", " 익히면"}}
		hist := new(MockHistory)
		svc := NewService(Deps{Translator: tr, History: hist})

		hist.On("RecordInput", ctx, alice, models.ActionTranslate, models.TranslationDetails{Text: "學而", Source: "Hanja", Target: "Korean"}).Return(&models.History{}, nil)
		tr.On("Translate", ctx, req).Return(nil)

		var got []string
		text, err := svc.StreamTranslation(ctx, alice, req, func(c string) error {
			got = append(got, c)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "배우고 익히면", text)
		assert.Equal(t, []string{"배우고", " 익히면"}, got)
		hist.AssertExpectations(t)
	})

	t.Run("returns partial text on failure", func(t *testing.T) {
		tr := &MockTranslator{chunks: []string{"배우고"}}
		svc := NewService(Deps{Translator: tr})
		tr.On("Translate", ctx, req).Return(errors.New("stream reset"))

		text, err := svc.StreamTranslation(ctx, auth.Session{}, req, nil)
		assert.Error(t, err)
		assert.Equal(t, "배우고", text)
	})

	t.Run("languages required", func(t *testing.T) {
		svc := NewService(Deps{Translator: &MockTranslator{}})
		_, err := svc.StreamTranslation(ctx, alice, inference.TranslationRequest{SourceText: "學"}, nil)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})
}

func TestService_TranslationStats(t *testing.T) {
	ctx := context.Background()
	tr := &MockTranslator{}
	svc := NewService(Deps{Translator: tr}, WithMaxTokens(2))
	tr.On("Tokenize", ctx, "學而時").Return(&inference.MTTokenizeResult{Text: "學而時", Tokens: []int{1, 2, 3}, TokenCount: 3}, nil)

	st, err := svc.TranslationStats(ctx, "學而時")
	require.NoError(t, err)
	assert.Equal(t, Stats{Chars: 3, TokenCount: 3, MaxTokens: 2, OverLimit: true}, st)
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("typed entity record", func(t *testing.T) {
		hist := new(MockHistory)
		svc := NewService(Deps{History: hist})
		hist.On("Save", ctx, alice, models.ActionNER, mock.MatchedBy(func(d models.NERDetails) bool {
			return d.Text == "王安石" && len(d.User) == 1 && d.User[0].Tag == "PER"
		})).Return(&models.History{ID: "h1"}, nil)

		rec, err := svc.Save(ctx, alice, models.ActionNER, json.RawMessage(`{"text":"王安石","user":[{"start":0,"end":3,"text":"王安石","tag":"PER"}]}`))
		require.NoError(t, err)
		assert.Equal(t, "h1", rec.ID)
	})

	t.Run("rejects wrong shape", func(t *testing.T) {
		svc := NewService(Deps{History: new(MockHistory)})
		_, err := svc.Save(ctx, alice, models.ActionNER, json.RawMessage(`{"text":"a","user":"oops"}`))
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		svc := NewService(Deps{History: new(MockHistory)})
		_, err := svc.Save(ctx, alice, "OCR", json.RawMessage(`{}`))
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})
}

func TestService_LoadNER(t *testing.T) {
	ctx := context.Background()

	t.Run("restyles spans", func(t *testing.T) {
		hist := new(MockHistory)
		svc := NewService(Deps{History: hist})
		hist.On("Get", ctx, alice, "h1").Return(&models.History{
			ID:      "h1",
			Action:  models.ActionNER,
			Details: json.RawMessage(`{"text":"王安石","pred":[{"start":0,"end":3,"tag":"PER"}],"user":[{"start":0,"end":3,"tag":"ORG","color":"#000"}]}`),
		}, nil)

		loaded, err := svc.LoadNER(ctx, alice, "h1")
		require.NoError(t, err)
		assert.Equal(t, "王安石", loaded.Text)
		assert.Equal(t, "#fecaca", loaded.Pred[0].Color)
		assert.Equal(t, "#bfdbfe", loaded.User[0].Color)
	})

	t.Run("wrong action", func(t *testing.T) {
		hist := new(MockHistory)
		svc := NewService(Deps{History: hist})
		hist.On("Get", ctx, alice, "h2").Return(&models.History{ID: "h2", Action: models.ActionTranslate, Details: json.RawMessage(`{}`)}, nil)

		_, err := svc.LoadNER(ctx, alice, "h2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid history item type")
	})
}
