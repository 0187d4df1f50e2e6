package ner

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// Process runs the entity workspace on a text
// @Summary Recognize entities
// @Description Tokenize, predict and decode entities. Signed-in callers get an input-only history record.
// @Tags ner
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} types.NERProcessResponse
// @Failure 400 {object} types.ErrorResponse
// @Failure 502 {object} types.ErrorResponse
// @Failure 503 {object} types.ErrorResponse
// @Router /api/v1/ner/process [post]
func Process(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		result, err := deps.Workspace.ProcessNER(c.Request.Context(), types.SessionFrom(c), req.Text)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.NERProcessResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			NERResult:    *result,
		})
	}
}

// Stats counts entity model tokens
// @Summary Entity token statistics
// @Tags ner
// @Accept json
// @Produce json
// @Param request body types.TextRequest true "Text"
// @Success 200 {object} types.StatsResponse
// @Router /api/v1/ner/stats [post]
func Stats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TextRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		stats, err := deps.Workspace.Stats(c.Request.Context(), req.Text, inference.TaskNER)
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

// EntityTypes lists the entity buckets and their colors
// @Summary List entity types
// @Tags ner
// @Produce json
// @Success 200 {object} types.EntityTypesResponse
// @Router /api/v1/ner/entity-types [get]
func EntityTypes(c *gin.Context) {
	types.SendSuccess(c, types.EntityTypesResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Types:        annotation.EntityTypes(),
	})
}

// Decode turns a tag sequence into styled spans
// @Summary Decode IOB tags
// @Description Decode a comma-joined IOB string, or a tag list, into entity spans over text
// @Tags ner
// @Accept json
// @Produce json
// @Param request body types.DecodeRequest true "Text and tags"
// @Success 200 {object} types.SpansResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/ner/decode [post]
func Decode(c *gin.Context) {
	var req types.DecodeRequest
	if !types.BindJSONOrError(c, &req) {
		return
	}

	tags := req.Tags
	if len(tags) == 0 {
		tags = annotation.ParseTags(req.IOB)
	}

	types.SendSuccess(c, types.SpansResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Text:         req.Text,
		Spans:        annotation.ApplyEntityStyles(annotation.Decode(req.Text, tags)),
	})
}

// Markup serializes spans to inline markup, or parses markup back
// @Summary Convert between spans and markup
// @Description With markup set, parse it into text and spans. Otherwise serialize text and spans.
// @Tags ner
// @Accept json
// @Produce json
// @Param request body types.MarkupRequest true "Spans or markup"
// @Success 200 {object} types.MarkupResponse
// @Failure 400 {object} types.ErrorResponse
// @Router /api/v1/ner/markup [post]
func Markup(c *gin.Context) {
	var req types.MarkupRequest
	if !types.BindJSONOrError(c, &req) {
		return
	}

	if req.Markup != "" {
		text, spans, err := annotation.ParseMarkup(req.Markup)
		if err != nil {
			types.SendAppError(c, apperrors.ValidationError("markup", err.Error()))
			return
		}
		types.SendSuccess(c, types.SpansResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Text:         text,
			Spans:        annotation.ApplyEntityStyles(spans),
		})
		return
	}

	types.SendSuccess(c, types.MarkupResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Markup:       annotation.Serialize(req.Text, req.Spans),
	})
}

// Load reads a saved entity record for the editor
// @Summary Load a saved entity record
// @Tags ner
// @Security BearerAuth
// @Produce json
// @Param id path string true "History record ID"
// @Success 200 {object} workspace.LoadedNER
// @Failure 400 {object} types.ErrorResponse
// @Failure 403 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /api/v1/ner/load/{id} [get]
func Load(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		loaded, err := deps.Workspace.LoadNER(c.Request.Context(), types.SessionFrom(c), c.Param("id"))
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		c.JSON(http.StatusOK, loaded)
	}
}
