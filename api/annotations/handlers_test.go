package annotations_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjaplatform/hanja-api/api/annotations"
	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/pkg/annotation"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	annotations.RegisterRoutes(router.Group("/api/v1/annotations"))
	return router
}

func post(t *testing.T, router *gin.Engine, path, body string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestGetSegments(t *testing.T) {
	router := setupRouter()

	var resp types.SegmentsResponse
	code := post(t, router, "/api/v1/annotations/segments",
		`{"content":"王安石至京","spans":[{"start":0,"end":3,"tag":"PER"}]}`, &resp)

	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Segments, 2)
	assert.True(t, resp.Segments[0].Mark)
	assert.Equal(t, "王安石", resp.Segments[0].Content)
	assert.False(t, resp.Segments[1].Mark)
	assert.Equal(t, "至京", resp.Segments[1].Content)
	assert.Empty(t, resp.HTML)
}

func TestGetSegments_MissingContent(t *testing.T) {
	router := setupRouter()
	code := post(t, router, "/api/v1/annotations/segments", `{"spans":[]}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRender(t *testing.T) {
	router := setupRouter()

	var resp types.SegmentsResponse
	code := post(t, router, "/api/v1/annotations/render",
		`{"content":"王安石至京","spans":[{"start":0,"end":3,"tag":"PER","color":"#fecaca"}],"tagMode":"above"}`, &resp)

	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, resp.HTML, `data-start="0"`)
	assert.Contains(t, resp.HTML, `data-start="3"`)
	assert.Contains(t, resp.HTML, "annotation-tag")
	assert.Contains(t, resp.HTML, "#fecaca")
}

func TestSelect(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name        string
		body        string
		wantChanged bool
		wantSpans   []annotation.Span
	}{
		{
			name:        "new span with tag style",
			body:        `{"content":"王安石至京","spans":[],"anchor":{"base":0,"offset":0},"focus":{"base":0,"offset":3},"selectionText":"王安石","tag":"PER"}`,
			wantChanged: true,
			wantSpans: []annotation.Span{
				{Start: 0, End: 3, Text: "王安石", Tag: "PER", Color: "#fecaca", TextColor: annotation.DefaultTextColor},
			},
		},
		{
			name:        "backwards selection",
			body:        `{"content":"王安石至京","spans":[],"anchor":{"base":3,"offset":2},"focus":{"base":3,"offset":1},"tag":"LOC"}`,
			wantChanged: true,
			wantSpans: []annotation.Span{
				{Start: 4, End: 5, Text: "京", Tag: "LOC", Color: "#bbf7d0", TextColor: annotation.DefaultTextColor},
			},
		},
		{
			name:        "overlap rejected",
			body:        `{"content":"王安石至京","spans":[{"start":0,"end":3,"tag":"PER"}],"anchor":{"base":0,"offset":2},"focus":{"base":3,"offset":1},"tag":"LOC"}`,
			wantChanged: false,
			wantSpans:   []annotation.Span{{Start: 0, End: 3, Tag: "PER"}},
		},
		{
			name:        "node without data-start",
			body:        `{"content":"王安石至京","spans":[],"anchor":{"base":null,"offset":0},"focus":{"base":0,"offset":3},"selectionText":"王安石","tag":"PER"}`,
			wantChanged: false,
			wantSpans:   []annotation.Span{},
		},
		{
			name:        "collapsed",
			body:        `{"content":"王安石至京","spans":[],"anchor":{"base":0,"offset":1},"focus":{"base":0,"offset":1},"tag":"PER"}`,
			wantChanged: false,
			wantSpans:   []annotation.Span{},
		},
		{
			name:        "read only",
			body:        `{"content":"王安石至京","spans":[],"anchor":{"base":0,"offset":0},"focus":{"base":0,"offset":3},"tag":"PER","readOnly":true}`,
			wantChanged: false,
			wantSpans:   []annotation.Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp types.EditResponse
			code := post(t, router, "/api/v1/annotations/select", tt.body, &resp)

			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.wantChanged, resp.Changed)
			assert.Equal(t, tt.wantSpans, resp.Spans)
		})
	}
}

func TestRemove(t *testing.T) {
	router := setupRouter()
	state := `"content":"王安石至京","spans":[{"start":0,"end":3,"tag":"PER"},{"start":4,"end":5,"tag":"LOC"}]`

	t.Run("removes clicked mark", func(t *testing.T) {
		var resp types.EditResponse
		code := post(t, router, "/api/v1/annotations/remove", `{`+state+`,"start":0,"end":3}`, &resp)

		require.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Changed)
		assert.Equal(t, []annotation.Span{{Start: 4, End: 5, Tag: "LOC"}}, resp.Spans)
	})

	t.Run("ignored while selecting", func(t *testing.T) {
		var resp types.EditResponse
		code := post(t, router, "/api/v1/annotations/remove", `{`+state+`,"start":0,"end":3,"selectionText":"安"}`, &resp)

		require.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Changed)
		assert.Len(t, resp.Spans, 2)
	})

	t.Run("unknown mark", func(t *testing.T) {
		var resp types.EditResponse
		code := post(t, router, "/api/v1/annotations/remove", `{`+state+`,"start":1,"end":2}`, &resp)

		require.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Changed)
	})

	t.Run("read only", func(t *testing.T) {
		var resp types.EditResponse
		code := post(t, router, "/api/v1/annotations/remove", `{`+state+`,"start":0,"end":3,"readOnly":true}`, &resp)

		require.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Changed)
	})
}
