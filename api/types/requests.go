package types

import (
	"encoding/json"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

// TextRequest carries a single text.
type TextRequest struct {
	Text string `json:"text" example:"王安石至京師"`
}

// TokenizeRequest asks for a token count.
type TokenizeRequest struct {
	Text     string `json:"text" example:"學而時習之"`
	TaskType string `json:"taskType" example:"NER"` // NER or PR
}

// PunctuateRequest is the legacy punctuation proxy request.
type PunctuateRequest struct {
	Text  string `json:"text" example:"學而時習之不亦說乎"`
	Style string `json:"style,omitempty" example:"simple"` // simple, simple-space or comprehensive
}

// DecodeRequest pairs a text with a tag sequence.
type DecodeRequest struct {
	Text string   `json:"text" binding:"required" example:"王安石"`
	IOB  string   `json:"iob,omitempty" example:"B-ajd_person,I-ajd_person,I-ajd_person"`
	Tags []string `json:"tags,omitempty"`
}

// MarkupRequest asks for spans to be serialized, or markup to be parsed.
type MarkupRequest struct {
	Text   string            `json:"text,omitempty"`
	Spans  []annotation.Span `json:"spans,omitempty"`
	Markup string            `json:"markup,omitempty" example:"<Person>王安石</Person>至京師"`
}

// SegmentsRequest describes an annotated text.
type SegmentsRequest struct {
	Content string            `json:"content" binding:"required"`
	Spans   []annotation.Span `json:"spans"`
	TagMode string            `json:"tagMode,omitempty" example:"above"` // hide, right or above
}

// SelectionPoint is a selection endpoint: the data-start value of the
// segment node it falls in and a character offset inside that node.
type SelectionPoint struct {
	Base   *int `json:"base"`
	Offset int  `json:"offset"`
}

// Point converts to the editor's point type.
func (p SelectionPoint) Point() annotation.Point {
	return annotation.Point{Base: p.Base, Offset: p.Offset}
}

// SelectRequest is a text selection made over the rendered segments.
type SelectRequest struct {
	SegmentsRequest
	Anchor        SelectionPoint `json:"anchor"`
	Focus         SelectionPoint `json:"focus"`
	SelectionText string         `json:"selectionText,omitempty"`
	Tag           string         `json:"tag" example:"PER"`
	ReadOnly      bool           `json:"readOnly,omitempty"`
}

// RemoveRequest is a click on a marked segment.
type RemoveRequest struct {
	SegmentsRequest
	Start         int    `json:"start"`
	End           int    `json:"end"`
	SelectionText string `json:"selectionText,omitempty"`
	ReadOnly      bool   `json:"readOnly,omitempty"`
}

// SaveHistoryRequest stores a full history record.
type SaveHistoryRequest struct {
	Action  models.Action   `json:"action" binding:"required" example:"NER"`
	Details json.RawMessage `json:"details" binding:"required" swaggertype:"object"`
}
