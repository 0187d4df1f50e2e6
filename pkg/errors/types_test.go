package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCodes(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NotFound("history record", "abc"), http.StatusNotFound},
		{ValidationError("text", "Please enter some text to process"), http.StatusBadRequest},
		{Unauthorized("login required"), http.StatusUnauthorized},
		{Forbidden("not yours"), http.StatusForbidden},
		{ExternalServiceError("ner", fmt.Errorf("boom")), http.StatusBadGateway},
		{NoResultsError("ner"), http.StatusBadGateway},
		{ServiceDownError("ner", nil), http.StatusServiceUnavailable},
		{New(ErrCodeAPITimeout, "slow"), http.StatusGatewayTimeout},
		{ConfigError("inference.url", "not set"), http.StatusInternalServerError},
		{New(ErrCodeInternal, "x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.GetHTTPCode())
			assert.Equal(t, tt.want, GetHTTPCode(tt.err))
		})
	}
}

func TestWrappedLookup(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	err := fmt.Errorf("predicting: %w", ExternalServiceError("ner", cause))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeExternalService, appErr.Code)
	assert.True(t, Is(err, ErrCodeExternalService))
	assert.Equal(t, http.StatusBadGateway, GetHTTPCode(err))
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(fmt.Errorf("plain")))
}

func TestNoResultsMessage(t *testing.T) {
	assert.Equal(t, "No results returned from API", NoResultsError("punctuation").Message)
}
