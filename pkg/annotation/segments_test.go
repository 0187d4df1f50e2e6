package annotation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinContent(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Content)
	}
	return b.String()
}

func TestComputeSegments(t *testing.T) {
	t.Run("gaps around spans", func(t *testing.T) {
		content := "hello world foo"
		spans := []Span{{Start: 6, End: 11, Tag: "LOC"}}

		segs := ComputeSegments(content, spans)
		require.Len(t, segs, 3)
		assert.Equal(t, Segment{Span: Span{Start: 0, End: 6}, Content: "hello "}, segs[0])
		assert.True(t, segs[1].Mark)
		assert.Equal(t, "world", segs[1].Content)
		assert.Equal(t, "LOC", segs[1].Tag)
		assert.Equal(t, Segment{Span: Span{Start: 11, End: 15}, Content: " foo"}, segs[2])
	})

	t.Run("no spans yields one segment", func(t *testing.T) {
		segs := ComputeSegments("之乎者也", nil)
		require.Len(t, segs, 1)
		assert.False(t, segs[0].Mark)
		assert.Equal(t, 4, segs[0].End)
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Empty(t, ComputeSegments("", nil))
	})

	t.Run("spans are visited in start order", func(t *testing.T) {
		content := "甲乙丙丁戊"
		spans := []Span{{Start: 3, End: 5, Tag: "PER"}, {Start: 0, End: 1, Tag: "LOC"}}

		segs := ComputeSegments(content, spans)
		require.Len(t, segs, 3)
		assert.Equal(t, "甲", segs[0].Content)
		assert.Equal(t, "乙丙", segs[1].Content)
		assert.Equal(t, "丁戊", segs[2].Content)
		assert.Equal(t, content, joinContent(segs))
	})

	t.Run("adjacent spans leave no gap", func(t *testing.T) {
		segs := ComputeSegments("ABCD", []Span{{Start: 0, End: 2}, {Start: 2, End: 4}})
		require.Len(t, segs, 2)
		assert.True(t, segs[0].Mark)
		assert.True(t, segs[1].Mark)
	})

	t.Run("concatenation reproduces content", func(t *testing.T) {
		content := "學而時習之不亦說乎有朋自遠方來"
		spans := []Span{{Start: 10, End: 12}, {Start: 2, End: 4}, {Start: 14, End: 15}}
		assert.Equal(t, content, joinContent(ComputeSegments(content, spans)))
	})

	t.Run("shared start puts the longer span first", func(t *testing.T) {
		spans := []Span{{Start: 0, End: 2, Tag: "PER"}, {Start: 0, End: 4, Tag: "LOC"}}

		segs := ComputeSegments("ABCDE", spans)
		require.Len(t, segs, 3)
		assert.Equal(t, Segment{Span: spans[1], Content: "ABCD", Mark: true}, segs[0])
		assert.Equal(t, Segment{Span: spans[0], Content: "AB", Mark: true}, segs[1])
		assert.Equal(t, Segment{Span: Span{Start: 2, End: 5}, Content: "CDE"}, segs[2])
	})

	t.Run("repeated calls are identical", func(t *testing.T) {
		content := "王安石至汴京見司馬光"
		spans := []Span{{Start: 7, End: 10, Tag: "PER"}, {Start: 0, End: 3, Tag: "PER"}, {Start: 4, End: 6, Tag: "LOC"}}
		before := Clone(spans)

		first := ComputeSegments(content, spans)
		second := ComputeSegments(content, spans)
		assert.Equal(t, first, second)
		assert.Equal(t, before, spans)
	})
}
