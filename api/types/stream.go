package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StreamWriter writes a streamed response. Headers are sent with the first
// chunk so that an error raised before any output can still be answered
// with a JSON error body.
type StreamWriter struct {
	c       *gin.Context
	started bool
}

// NewStreamWriter wraps c for streaming.
func NewStreamWriter(c *gin.Context) *StreamWriter {
	return &StreamWriter{c: c}
}

// Started reports whether any output has been sent.
func (w *StreamWriter) Started() bool {
	return w.started
}

func (w *StreamWriter) start() {
	if w.started {
		return
	}
	w.started = true
	h := w.c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache, no-transform")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.c.Status(http.StatusOK)
}

// WriteRaw writes chunk unframed and flushes it.
func (w *StreamWriter) WriteRaw(chunk string) error {
	w.start()
	if _, err := w.c.Writer.WriteString(chunk); err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}

// WriteEvent writes one server-sent event and flushes it.
func (w *StreamWriter) WriteEvent(event string, data any) error {
	w.start()
	w.c.SSEvent(event, data)
	if err := w.c.Request.Context().Err(); err != nil {
		return err
	}
	w.c.Writer.Flush()
	return nil
}
