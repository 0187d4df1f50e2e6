// Package proxy serves the inference passthrough routes the web front end
// calls directly.
package proxy

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// Tokenize counts tokens for the entity or punctuation model
// @Summary Tokenize text
// @Description Tokenize text with the NER or punctuation tokenizer. Blank text yields an empty result.
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body types.TokenizeRequest true "Text and task"
// @Success 200 {object} types.TokenizeResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/tokenize [post]
func Tokenize(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TokenizeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		task := inference.Task(req.TaskType)
		if !task.Valid() {
			types.SendAppError(c, apperrors.ValidationError("taskType", "Valid taskType (NER or PR) is required"))
			return
		}

		tokenizer := deps.Tokenizer
		if tokenizer == nil {
			tokenizer = deps.Inference
		}
		if tokenizer == nil {
			types.SendAppError(c, apperrors.ConfigError("inference.url", "Server configuration error"))
			return
		}

		result, err := tokenizer.Tokenize(c.Request.Context(), req.Text, task)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.TokenizeResponse{
			TaskType: string(task),
			Text:     result.Text,
			Tokens:   result.Tokens,
			TokenIDs: result.TokenIDs,
		})
	}
}

// NER runs the entity model
// @Summary Predict entities
// @Description Run the NER model on one text and return its raw prediction
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} types.NERProxyResponse
// @Failure 502 {object} types.ErrorResponse
// @Failure 503 {object} types.ErrorResponse
// @Router /api/ner [post]
func NER(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if deps.Inference == nil {
			types.SendAppError(c, apperrors.ConfigError("inference.url", "Server configuration error"))
			return
		}

		results, err := deps.Inference.PredictNER(c.Request.Context(), req.Text)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.NERProxyResponse{Result: results[0], AllResults: results})
	}
}

// Punctuate runs the punctuation model
// @Summary Restore punctuation
// @Description Run the punctuation model in the given style (simple, simple-space or comprehensive)
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body types.PunctuateRequest true "Text and style"
// @Success 200 {object} types.PunctuateProxyResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/punctuate [post]
func Punctuate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PunctuateRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if deps.Inference == nil {
			types.SendAppError(c, apperrors.ConfigError("inference.url", "Server configuration error"))
			return
		}

		punctuated, err := deps.Inference.Punctuate(c.Request.Context(), req.Text, req.Style)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.PunctuateProxyResponse{PunctuatedText: punctuated})
	}
}

// Translate streams a translation as raw text chunks
// @Summary Stream a translation
// @Description Translate text and stream the model output as it is generated
// @Tags proxy
// @Accept json
// @Produce text/event-stream
// @Param request body inference.TranslationRequest true "Languages and text"
// @Success 200 {string} string "translated text, streamed"
// @Failure 400 {object} types.ErrorResponse
// @Failure 503 {object} types.ErrorResponse
// @Router /api/translate [post]
func Translate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inference.TranslationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if deps.Translator == nil {
			types.SendAppError(c, apperrors.ConfigError("translation.url", "Server configuration error"))
			return
		}

		stream := types.NewStreamWriter(c)
		err := deps.Translator.Translate(c.Request.Context(), req, stream.WriteRaw)
		if err == nil {
			if !stream.Started() {
				_ = stream.WriteRaw("")
			}
			return
		}
		if !stream.Started() {
			types.SendAppError(c, err)
			return
		}
		// the status line is gone; end the stream early
		slog.Warn("translation stream failed", "error", err)
	}
}

// TokenizeMT counts translation model tokens
// @Summary Tokenize text for translation
// @Description Count the translation model's tokens for a text. Blank text yields an empty result.
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} inference.MTTokenizeResult
// @Failure 502 {object} types.ErrorResponse
// @Router /api/tokenize-mt [post]
func TokenizeMT(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if deps.Translator == nil {
			types.SendAppError(c, apperrors.ConfigError("translation.url", "Server configuration error"))
			return
		}

		result, err := deps.Translator.Tokenize(c.Request.Context(), req.Text)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendSuccess(c, result)
	}
}

// Hanzi looks up character definitions
// @Summary Look up characters
// @Description Definitions for every non-whitespace character of a text. Characters without an entry are omitted.
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} types.HanziResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/hanzi [post]
func Hanzi(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if deps.Hanzi == nil {
			types.SendAppError(c, apperrors.ConfigError("hanzi.dictionary_path", "Server configuration error"))
			return
		}

		defs, err := deps.Hanzi.Lookup(c.Request.Context(), req.Text)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendSuccess(c, types.HanziResponse{Definitions: defs})
	}
}
