package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

// Action identifies the workspace a history record came from.
type Action string

const (
	ActionPunctuate Action = "PR"
	ActionNER       Action = "NER"
	ActionTranslate Action = "MT"
)

// Actions lists every valid action.
var Actions = []Action{ActionPunctuate, ActionNER, ActionTranslate}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionPunctuate, ActionNER, ActionTranslate:
		return true
	}
	return false
}

// Label is the human readable name used in exports.
func (a Action) Label() string {
	switch a {
	case ActionPunctuate:
		return "Punctuate"
	case ActionNER:
		return "NER"
	case ActionTranslate:
		return "Translate"
	}
	return string(a)
}

// History is one record of a user's work. Input-only records are written
// automatically when a task runs; full records are written on explicit save.
type History struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`
	Action    Action          `json:"action" gorm:"size:8;not null;index"`
	Details   json.RawMessage `json:"details" gorm:"-"`
	RawDetail string          `json:"-" gorm:"column:details;type:text;not null"`
	Owner     string          `json:"owner" gorm:"not null;index"`
	InputOnly bool            `json:"inputOnly" gorm:"not null;index"`
	Created   time.Time       `json:"created" gorm:"autoCreateTime;index"`
	Updated   time.Time       `json:"updated" gorm:"autoUpdateTime"`

	// Malformed is set when the stored details are not valid JSON.
	Malformed bool `json:"-" gorm:"-"`
}

// BeforeCreate generates an ID before inserting a new record
func (h *History) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

// BeforeSave serializes Details into its column
func (h *History) BeforeSave(tx *gorm.DB) error {
	if h.Details == nil {
		return nil
	}
	if !json.Valid(h.Details) {
		return fmt.Errorf("history details are not valid JSON")
	}
	h.RawDetail = string(h.Details)
	return nil
}

// AfterFind restores Details from its column
func (h *History) AfterFind(tx *gorm.DB) error {
	if !json.Valid([]byte(h.RawDetail)) {
		h.Malformed = true
		h.Details = nil
		return nil
	}
	h.Details = json.RawMessage(h.RawDetail)
	return nil
}

// TableName returns the table name for the History model
func (History) TableName() string {
	return "history"
}

// PunctuationDetails is stored for ActionPunctuate.
type PunctuationDetails struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
	Pred string `json:"pred,omitempty"`
	User string `json:"user,omitempty"`
}

// NERDetails is stored for ActionNER.
type NERDetails struct {
	Text string            `json:"text"`
	Pred []annotation.Span `json:"pred,omitempty"`
	User []annotation.Span `json:"user,omitempty"`
}

// TranslationDetails is stored for ActionTranslate.
type TranslationDetails struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
	Pred   string `json:"pred,omitempty"`
	User   string `json:"user,omitempty"`
}
