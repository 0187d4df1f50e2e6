package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// Handler manages session endpoints and middleware
type Handler struct {
	authService *auth.Service
}

// NewHandler creates a new auth handler. A nil service makes every request
// anonymous.
func NewHandler(authService *auth.Service) *Handler {
	return &Handler{authService: authService}
}

// Me returns the caller's session
// @Summary Get current session
// @Description Get the session decoded from the caller's token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.Session
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	session := types.SessionFrom(c)
	if !session.Authenticated() {
		types.SendAppError(c, apperrors.Unauthorized("Authentication required"))
		return
	}
	c.JSON(http.StatusOK, session)
}

// AuthMiddleware requires a valid session token.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			types.SendAppError(c, apperrors.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		session, err := h.authenticate(token)
		if err != nil {
			message := "Invalid or expired token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token expired"
			}
			types.SendAppError(c, apperrors.Unauthorized(message))
			c.Abort()
			return
		}

		types.SetSession(c, session)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches a session when a valid token is present
// and lets anonymous requests through.
func (h *Handler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if session, err := h.authenticate(token); err == nil {
				types.SetSession(c, session)
			}
		}
		c.Next()
	}
}

func (h *Handler) authenticate(token string) (auth.Session, error) {
	if h.authService == nil {
		return auth.Session{}, auth.ErrInvalidToken
	}
	return h.authService.Authenticate(token)
}

// tokenFromRequest reads "Bearer <token>", a bare token in the
// Authorization header, or the token query parameter used by websocket
// clients that cannot set headers.
func tokenFromRequest(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(rest)
		}
		return header
	}
	return c.Query("token")
}
