package translation

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// Server-sent event names
const (
	EventChunk = "chunk"
	EventDone  = "done"
	EventError = "error"
)

// DoneEvent carries the complete translation.
type DoneEvent struct {
	Text string `json:"text"`
}

// Process streams a translation as server-sent events
// @Summary Translate text
// @Description Stream a translation as "chunk" events followed by one "done" event holding the full text. A failure after the first chunk is sent as an "error" event. Signed-in callers get an input-only history record.
// @Tags translation
// @Accept json
// @Produce text/event-stream
// @Param request body inference.TranslationRequest true "Languages and text"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} types.ErrorResponse
// @Failure 503 {object} types.ErrorResponse
// @Router /api/v1/translation/process [post]
func Process(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req inference.TranslationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		stream := types.NewStreamWriter(c)
		text, err := deps.Workspace.StreamTranslation(c.Request.Context(), types.SessionFrom(c), req, func(chunk string) error {
			return stream.WriteEvent(EventChunk, chunk)
		})
		if err != nil {
			if !stream.Started() {
				types.SendAppError(c, err)
				return
			}
			slog.Warn("translation stream failed", "error", err, "chars", len(text))
			_ = stream.WriteEvent(EventError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Translation interrupted",
				Error:   string(apperrors.GetCode(err)),
			})
			return
		}

		_ = stream.WriteEvent(EventDone, DoneEvent{Text: text})
	}
}

// Stats counts translation model tokens
// @Summary Translation token statistics
// @Tags translation
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} types.StatsResponse
// @Router /api/v1/translation/stats [post]
func Stats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		stats, err := deps.Workspace.TranslationStats(c.Request.Context(), req.Text)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, types.StatsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Stats:        stats,
		})
	}
}
