package translation

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

const (
	maxMessageSize = 64 * 1024
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
)

// Message types sent over the socket
const (
	MessageChunk = "chunk"
	MessageDone  = "done"
	MessageError = "error"
)

// Message is one frame sent to the client. Every request the client sends
// is answered by zero or more chunk frames and then one done or error frame.
type Message struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewUpgrader accepts connections from the page's own host and from the
// given origins. "*" accepts any origin.
func NewUpgrader(origins []string) *websocket.Upgrader {
	allowAll := false
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if allowAll || origin == "" {
				return true
			}
			if allowed[origin] {
				return true
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}
}

// Socket streams translations over a websocket
// @Summary Translate over a websocket
// @Description Send inference.TranslationRequest frames; each is answered with chunk frames and a final done or error frame. Browsers pass the session token as the token query parameter.
// @Tags translation
// @Param token query string false "Session token"
// @Success 101 {string} string "switching protocols"
// @Router /api/v1/translation/ws [get]
func Socket(deps *types.Dependencies, upgrader *websocket.Upgrader) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade has already answered the request
			slog.Debug("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(maxMessageSize)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		session := types.SessionFrom(c)
		ctx := c.Request.Context()

		for {
			var req inference.TranslationRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Warn("websocket unexpected close", "error", err)
				}
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))

			send := func(m Message) error {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				return conn.WriteJSON(m)
			}

			text, err := deps.Workspace.StreamTranslation(ctx, session, req, func(chunk string) error {
				return send(Message{Type: MessageChunk, Text: chunk})
			})

			var reply Message
			if err != nil {
				reply = errorMessage(err)
			} else {
				reply = Message{Type: MessageDone, Text: text}
			}
			if err := send(reply); err != nil {
				slog.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}

func errorMessage(err error) Message {
	m := Message{Type: MessageError, Error: string(apperrors.GetCode(err)), Message: "Translation failed"}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.GetHTTPCode() < http.StatusInternalServerError {
		m.Message = appErr.Message
	}
	return m
}
