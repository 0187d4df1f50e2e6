package types

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/history"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

func TestDependencies(t *testing.T) {
	deps := &Dependencies{}

	assert.NotNil(t, deps)
	assert.Nil(t, deps.DB)
	assert.Nil(t, deps.Inference)
	assert.Nil(t, deps.History)
}

func TestSessionFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, SessionFrom(c).Authenticated())

	SetSession(c, auth.Session{UserID: "alice"})
	assert.Equal(t, "alice", SessionFrom(c).UserID)

	c.Set(SessionKey, "not a session")
	assert.False(t, SessionFrom(c).Authenticated())
}

func TestSendAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"history not found", history.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped forbidden", fmt.Errorf("get: %w", history.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"login required", history.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad details", history.ErrInvalidDetails, http.StatusBadRequest, "VALIDATION"},
		{"validation", apperrors.ValidationError("text", "Text is required"), http.StatusBadRequest, "VALIDATION"},
		{"backend down", apperrors.ServiceDownError("inference", nil), http.StatusServiceUnavailable, "SERVICE_DOWN"},
		{"no results", apperrors.NoResultsError("inference"), http.StatusBadGateway, "NO_RESULTS"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			SendAppError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestSendAppError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SendAppError(c, apperrors.ExternalServiceError("inference", fmt.Errorf("dial tcp 10.0.0.1:8000")))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestBindJSONOrError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type body struct {
		Text string `json:"text" binding:"required"`
	}

	tests := []struct {
		name     string
		payload  string
		limit    int64
		wantOK   bool
		wantCode int
		wantErr  string
	}{
		{"valid", `{"text":"王"}`, 1024, true, http.StatusOK, ""},
		{"missing field", `{}`, 1024, false, http.StatusBadRequest, "INVALID_INPUT"},
		{"malformed", `{"text":`, 1024, false, http.StatusBadRequest, "INVALID_INPUT"},
		{"too large", `{"text":"` + strings.Repeat("王", 20) + `"}`, 16, false, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Request.Body = http.MaxBytesReader(w, c.Request.Body, tt.limit)

			var b body
			ok := BindJSONOrError(c, &b)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "王", b.Text)
				return
			}
			assert.Equal(t, tt.wantCode, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErr, resp.Error)
		})
	}
}
