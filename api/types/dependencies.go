package types

import (
	"github.com/hanjaplatform/hanja-api/internal/database"
	"github.com/hanjaplatform/hanja-api/internal/observability/metrics"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/cleanup"
	"github.com/hanjaplatform/hanja-api/internal/services/hanzi"
	"github.com/hanjaplatform/hanja-api/internal/services/history"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/internal/services/workspace"
	"github.com/hanjaplatform/hanja-api/pkg/config"
)

// InferenceClient is the tokenize/NER/punctuation backend as seen by the
// proxy handlers.
type InferenceClient interface {
	inference.Tokenizer
	workspace.EntityRecognizer
	workspace.Punctuator
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB         *database.DB
	Config     *config.Config
	Sessions   *auth.Service
	Inference  InferenceClient
	Tokenizer  inference.Tokenizer
	Translator workspace.Translator
	Workspace  *workspace.Service
	History    history.Service
	Hanzi      *hanzi.Service
	Metrics    *metrics.Metrics
	Breakers   *inference.Executor
	Retention  *cleanup.Service
}

