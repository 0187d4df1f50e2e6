package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

func newEditor(req types.SegmentsRequest, opts ...annotation.Option) *annotation.Editor {
	opts = append(opts, annotation.WithTagDisplay(annotation.ParseTagDisplay(req.TagMode)))
	return annotation.NewEditor(req.Content, req.Spans, opts...)
}

func ok() types.BaseResponse {
	return types.BaseResponse{Status: types.StatusOK}
}

// GetSegments partitions content around its spans
// @Summary      Compute segments
// @Description  Split annotated content into marked and unmarked segments
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        request body types.SegmentsRequest true "Content and spans"
// @Success      200 {object} types.SegmentsResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/annotations/segments [post]
func GetSegments(c *gin.Context) {
	var req types.SegmentsRequest
	if !types.BindJSONOrError(c, &req) {
		return
	}

	types.SendSuccess(c, types.SegmentsResponse{
		BaseResponse: ok(),
		Segments:     newEditor(req).Segments(),
	})
}

// Render renders annotated content as HTML
// @Summary      Render annotations
// @Description  Render segments as inline HTML; every node carries a data-start attribute used for selections
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        request body types.SegmentsRequest true "Content, spans and tag mode"
// @Success      200 {object} types.SegmentsResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/annotations/render [post]
func Render(c *gin.Context) {
	var req types.SegmentsRequest
	if !types.BindJSONOrError(c, &req) {
		return
	}

	editor := newEditor(req)
	types.SendSuccess(c, types.SegmentsResponse{
		BaseResponse: ok(),
		Segments:     editor.Segments(),
		HTML:         editor.Render(),
	})
}

// Select adds a span from a text selection
// @Summary      Annotate a selection
// @Description  Turn a selection over the rendered segments into a span with the active tag. Collapsed, unmappable or overlapping selections leave the spans unchanged.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        request body types.SelectRequest true "Current state and selection"
// @Success      200 {object} types.EditResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/annotations/select [post]
func Select(c *gin.Context) {
	var req types.SelectRequest
	if !types.BindJSONOrError(c, &req) {
		return
	}

	tag := req.Tag
	opts := []annotation.Option{
		annotation.WithEnricher(func(s annotation.Span) annotation.Span {
			s.Tag = tag
			return annotation.ApplyEntityStyle(s)
		}),
	}
	if req.ReadOnly {
		opts = append(opts, annotation.ReadOnly())
	}
	editor := newEditor(req.SegmentsRequest, opts...)

	changed := editor.HandleSelection(&annotation.StaticSelection{
		AnchorPoint: req.Anchor.Point(),
		FocusPoint:  req.Focus.Point(),
		Text:        req.SelectionText,
	})

	types.SendSuccess(c, types.EditResponse{
		BaseResponse: ok(),
		Changed:      changed,
		Spans:        editor.Spans(),
		Segments:     editor.Segments(),
	})
}

// Remove deletes the span rendered by a clicked mark
// @Summary      Remove an annotation
// @Description  Remove the span at start..end. Ignored while a selection is active or in read-only mode.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        request body types.RemoveRequest true "Current state and clicked mark"
// @Success      200 {object} types.EditResponse
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Router       /api/v1/annotations/remove [post]
func Remove(c *gin.Context) {
	var req types.RemoveRequest
	if !types.BindJSONOrError(c, &req) {
		return
	}

	var opts []annotation.Option
	if req.ReadOnly {
		opts = append(opts, annotation.ReadOnly())
	}
	editor := newEditor(req.SegmentsRequest, opts...)

	seg := annotation.Segment{
		Span: annotation.Span{Start: req.Start, End: req.End},
		Mark: true,
	}
	changed := editor.HandleClick(seg, &annotation.StaticSelection{Text: req.SelectionText})

	types.SendSuccess(c, types.EditResponse{
		BaseResponse: ok(),
		Changed:      changed,
		Spans:        editor.Spans(),
		Segments:     editor.Segments(),
	})
}
