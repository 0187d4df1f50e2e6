package punctuation

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/internal/services/workspace"
)

// Process restores punctuation
// @Summary Punctuate text
// @Description Optionally strip existing punctuation (clean) and normalize, then restore punctuation in the given style. Signed-in callers get an input-only history record.
// @Tags punctuation
// @Accept json
// @Produce json
// @Param request body workspace.PunctuationRequest true "Text and options"
// @Success 200 {object} types.PunctuationProcessResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Router /api/v1/punctuation/process [post]
func Process(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req workspace.PunctuationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		result, err := deps.Workspace.ProcessPunctuation(c.Request.Context(), types.SessionFrom(c), req)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.PunctuationProcessResponse{
			BaseResponse:      types.BaseResponse{Status: types.StatusOK},
			PunctuationResult: *result,
		})
	}
}

// Stats counts punctuation model tokens
// @Summary Punctuation token statistics
// @Tags punctuation
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} types.StatsResponse
// @Router /api/v1/punctuation/stats [post]
func Stats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		stats, err := deps.Workspace.Stats(c.Request.Context(), req.Text, inference.TaskPunctuate)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		types.SendSuccess(c, types.StatsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Stats:        stats,
		})
	}
}
