package types

import (
	"time"

	"github.com/hanjaplatform/hanja-api/internal/models"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/internal/services/workspace"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`   // Error code/type
	Details any    `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string         `json:"timestamp"`
	Database  map[string]any `json:"database"`
	Breakers  map[string]any `json:"breakers,omitempty"`
}

// TokenizeResponse is the legacy tokenize proxy answer.
type TokenizeResponse struct {
	TaskType string   `json:"taskType"`
	Text     string   `json:"text"`
	Tokens   []string `json:"tokens"`
	TokenIDs []int    `json:"token_ids"`
}

// NERProxyResponse is the legacy entity proxy answer.
type NERProxyResponse struct {
	Result     inference.NERResult   `json:"result"`
	AllResults []inference.NERResult `json:"allResults"`
}

// PunctuateProxyResponse is the legacy punctuation proxy answer.
type PunctuateProxyResponse struct {
	PunctuatedText string `json:"punctuatedText"`
}

// HanziResponse maps characters to definitions.
type HanziResponse struct {
	Definitions map[string][]string `json:"definitions"`
}

// SpansResponse carries a span list.
type SpansResponse struct {
	BaseResponse
	Text  string            `json:"text,omitempty"`
	Spans []annotation.Span `json:"spans"`
}

// EntityTypesResponse lists the entity buckets in display order.
type EntityTypesResponse struct {
	BaseResponse
	Types []annotation.EntityType `json:"types"`
}

// MarkupResponse carries serialized markup.
type MarkupResponse struct {
	BaseResponse
	Markup string `json:"markup"`
}

// SegmentsResponse carries the segments of an annotated text.
type SegmentsResponse struct {
	BaseResponse
	Segments []annotation.Segment `json:"segments"`
	HTML     string               `json:"html,omitempty"`
}

// EditResponse reports the result of an editor event.
type EditResponse struct {
	BaseResponse
	Changed  bool                 `json:"changed"`
	Spans    []annotation.Span    `json:"spans"`
	Segments []annotation.Segment `json:"segments"`
}

// NERProcessResponse wraps an entity run.
type NERProcessResponse struct {
	BaseResponse
	workspace.NERResult
}

// PunctuationProcessResponse wraps a punctuation run.
type PunctuationProcessResponse struct {
	BaseResponse
	workspace.PunctuationResult
}

// StatsResponse wraps token statistics.
type StatsResponse struct {
	BaseResponse
	Stats workspace.Stats `json:"stats"`
}

// HistoryRecord is one history record in API responses.
type HistoryRecord struct {
	ID        string        `json:"id"`
	Action    models.Action `json:"action"`
	Details   any           `json:"details"`
	Owner     string        `json:"owner"`
	InputOnly bool          `json:"inputOnly"`
	Created   time.Time     `json:"created"`
	Updated   time.Time     `json:"updated"`
}

// NewHistoryRecord converts a model for output.
func NewHistoryRecord(h *models.History) HistoryRecord {
	return HistoryRecord{
		ID:        h.ID,
		Action:    h.Action,
		Details:   h.Details,
		Owner:     h.Owner,
		InputOnly: h.InputOnly,
		Created:   h.Created,
		Updated:   h.Updated,
	}
}

// HistoryListResponse is a page of history records.
type HistoryListResponse struct {
	BaseResponse
	Items []HistoryRecord `json:"items"`
	Count int             `json:"count"`
}

// HistoryRecordResponse wraps a single record.
type HistoryRecordResponse struct {
	BaseResponse
	Record HistoryRecord `json:"record"`
}
