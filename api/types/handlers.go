package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/history"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// SessionKey is the gin context key holding the caller's auth.Session.
const SessionKey = "session"

// SetSession stores the caller's session on the request context.
func SetSession(c *gin.Context, s auth.Session) {
	c.Set(SessionKey, s)
}

// SessionFrom returns the caller's session, or an anonymous one.
func SessionFrom(c *gin.Context) auth.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(auth.Session); ok {
			return s
		}
	}
	return auth.Session{}
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Status:  StatusError,
				Message: "Request body too large",
				Error:   "PAYLOAD_TOO_LARGE",
			})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError sends a standardized error response
func SendError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Status: StatusError, Message: message, Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// SendAppError maps err to a status code and sends it. Internal errors are
// reported without their cause.
func SendAppError(c *gin.Context, err error) {
	status, resp := errorResponse(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, resp)
}

func errorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Status: StatusError, Message: "History record not found", Error: string(apperrors.ErrCodeNotFound)}
	case errors.Is(err, history.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Status: StatusError, Message: "Please log in to continue", Error: string(apperrors.ErrCodeUnauthorized)}
	case errors.Is(err, history.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Status: StatusError, Message: "Access denied", Error: string(apperrors.ErrCodeForbidden)}
	case errors.Is(err, history.ErrInvalidAction),
		errors.Is(err, history.ErrInvalidDetails),
		errors.Is(err, history.ErrActionMismatch):
		return http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: err.Error(), Error: string(apperrors.ErrCodeValidation)}
	}

	if appErr, ok := apperrors.As(err); ok {
		status := appErr.GetHTTPCode()
		resp := ErrorResponse{Status: StatusError, Message: appErr.Message, Error: string(appErr.Code)}
		if status < http.StatusInternalServerError && len(appErr.Details) > 0 {
			resp.Details = appErr.Details
		}
		return status, resp
	}

	return http.StatusInternalServerError, ErrorResponse{Status: StatusError, Message: "Internal server error", Error: string(apperrors.ErrCodeInternal)}
}
