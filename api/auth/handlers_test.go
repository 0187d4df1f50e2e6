package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjaplatform/hanja-api/api/types"
	authService "github.com/hanjaplatform/hanja-api/internal/services/auth"
)

const testSecret = "test-secret"

func setupTestRouter(t *testing.T) (*gin.Engine, *authService.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := authService.NewService(testSecret, "admin")
	require.NoError(t, err)

	handler := NewHandler(svc)
	router := gin.New()
	router.GET("/me", handler.AuthMiddleware(), handler.Me)
	router.GET("/optional", handler.OptionalAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SessionFrom(c))
	})
	return router, svc
}

func TestHandler_Me(t *testing.T) {
	router, svc := setupTestRouter(t)

	token, err := svc.IssueToken(authService.Session{UserID: "user-123", Email: "test@example.com"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{"bearer token", "Bearer " + token, "", http.StatusOK},
		{"bare token", token, "", http.StatusOK},
		{"query token", "", "?token=" + token, http.StatusOK},
		{"missing token", "", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var session authService.Session
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
			assert.Equal(t, "user-123", session.UserID)
			assert.Equal(t, "test@example.com", session.Email)
			assert.False(t, session.Admin)
		})
	}
}

func TestHandler_ExpiredToken(t *testing.T) {
	router, svc := setupTestRouter(t)

	token, err := svc.IssueToken(authService.Session{UserID: "user-123"}, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestHandler_OptionalAuth(t *testing.T) {
	router, svc := setupTestRouter(t)

	token, err := svc.IssueToken(authService.Session{UserID: "admin-1", Admin: true}, time.Hour)
	require.NoError(t, err)

	t.Run("anonymous passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/optional", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var session authService.Session
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
		assert.Empty(t, session.UserID)
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		req.Header.Set("Authorization", "Bearer nope")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin session attached", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		var session authService.Session
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
		assert.Equal(t, "admin-1", session.UserID)
		assert.True(t, session.Admin)
	})
}

func TestHandler_NilService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil)
	router := gin.New()
	router.GET("/me", handler.AuthMiddleware(), handler.Me)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer anything")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
